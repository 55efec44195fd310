package entity

type AdStatus string

const (
	AdActive  AdStatus = "Active"
	AdSold    AdStatus = "Sold"
	AdPending AdStatus = "Pending"
)

// Ad is the seller-side view of a listing. A posted ad and its listing share an id.
type Ad struct {
	ID          int64    `json:"id" bson:"id"`
	Title       string   `json:"title" bson:"title"`
	Price       string   `json:"price" bson:"price"`
	ImageURL    string   `json:"image_url" bson:"image_url"`
	Status      AdStatus `json:"status" bson:"status"`
	Views       int      `json:"views" bson:"views"`
	Likes       int      `json:"likes" bson:"likes"`
	Category    string   `json:"category" bson:"category"`
	Description string   `json:"description" bson:"description"`
	Location    string   `json:"location" bson:"location"`
	Sizes       []string `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty" bson:"colors,omitempty"`
	Material    string   `json:"material,omitempty" bson:"material,omitempty"`
	IsPromoted  bool     `json:"is_promoted" bson:"is_promoted"`
	Condition   string   `json:"condition,omitempty" bson:"condition,omitempty"`
}

func (a Ad) Clone() Ad {
	out := a
	out.Sizes = append([]string(nil), a.Sizes...)
	out.Colors = append([]string(nil), a.Colors...)
	return out
}

// ToListing derives the catalog listing for a freshly posted ad.
func (a Ad) ToListing(seller Seller) Listing {
	return Listing{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Price:       a.Price,
		ImageURL:    a.ImageURL,
		Category:    a.Category,
		Location:    a.Location,
		Seller:      seller,
		Sizes:       append([]string(nil), a.Sizes...),
		Colors:      append([]string(nil), a.Colors...),
		Material:    a.Material,
		Status:      ListingAvailable,
		Badge:       BadgeNew,
		IsPromoted:  a.IsPromoted,
		Condition:   a.Condition,
	}
}
