package entity

type NotificationType string

const (
	NotificationOffer     NotificationType = "offer"
	NotificationMessage   NotificationType = "message"
	NotificationAlert     NotificationType = "alert"
	NotificationPromotion NotificationType = "promotion"
)

type Notification struct {
	ID        int64            `json:"id" bson:"id"`
	Type      NotificationType `json:"type" bson:"type"`
	Text      string           `json:"text" bson:"text"`
	Timestamp string           `json:"timestamp" bson:"timestamp"`
	Read      bool             `json:"read" bson:"read"`
	RelatedID int64            `json:"related_id,omitempty" bson:"related_id,omitempty"`
}

type ChatType string

const (
	ChatBuying  ChatType = "buying"
	ChatSelling ChatType = "selling"
)

// ChatSummary is the inbox row for a conversation; it shares the conversation id.
type ChatSummary struct {
	ID          int64    `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	AvatarURL   string   `json:"avatar_url" bson:"avatar_url"`
	LastMessage string   `json:"last_message" bson:"last_message"`
	Timestamp   string   `json:"timestamp" bson:"timestamp"`
	Unread      bool     `json:"unread" bson:"unread"`
	IsFavorite  bool     `json:"is_favorite" bson:"is_favorite"`
	Type        ChatType `json:"type" bson:"type"`
	Reviews     int      `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Online      bool     `json:"online" bson:"online"`
}

type ActivityType string

const (
	ActivityNewUser    ActivityType = "newUser"
	ActivityNewListing ActivityType = "newListing"
)

type ActivityAuthor struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type ActivityListing struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type RecentActivity struct {
	ID          int64            `json:"id"`
	Type        ActivityType     `json:"type"`
	Description string           `json:"description"`
	Timestamp   string           `json:"timestamp"`
	Author      *ActivityAuthor  `json:"author,omitempty"`
	Listing     *ActivityListing `json:"listing,omitempty"`
}
