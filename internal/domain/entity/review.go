package entity

// Review is a buyer's comment shown on a seller's profile.
type Review struct {
	ID              int64  `json:"id" bson:"id"`
	SellerID        int64  `json:"seller_id" bson:"seller_id"`
	AuthorName      string `json:"author_name" bson:"author_name"`
	AuthorAvatarURL string `json:"author_avatar_url" bson:"author_avatar_url"`
	Comment         string `json:"comment" bson:"comment"`
	Timestamp       string `json:"timestamp" bson:"timestamp"`
}
