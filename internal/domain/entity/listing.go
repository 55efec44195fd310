package entity

import (
	"math"
	"strconv"
	"strings"
)

type ListingStatus string

const (
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
)

type Badge string

const (
	BadgeNew      Badge = "New"
	BadgeFeatured Badge = "Featured"
)

type Seller struct {
	ID           int64  `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	AvatarURL    string `json:"avatar_url" bson:"avatar_url"`
	Reviews      int    `json:"reviews" bson:"reviews"`
	MemberSince  string `json:"member_since" bson:"member_since"`
	ContactCount int    `json:"contact_count,omitempty" bson:"contact_count,omitempty"`
}

// Listing is a for-sale item shown in the catalog. Price keeps its display
// form ("$250.00"); use NumericPrice for comparisons.
type Listing struct {
	ID          int64         `json:"id" bson:"id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Price       string        `json:"price" bson:"price"`
	ImageURL    string        `json:"image_url" bson:"image_url"`
	Category    string        `json:"category" bson:"category"`
	Location    string        `json:"location" bson:"location"`
	Seller      Seller        `json:"seller" bson:"seller"`
	Sizes       []string      `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors      []string      `json:"colors,omitempty" bson:"colors,omitempty"`
	Material    string        `json:"material,omitempty" bson:"material,omitempty"`
	Status      ListingStatus `json:"status" bson:"status"`
	Badge       Badge         `json:"badge,omitempty" bson:"badge,omitempty"`
	IsPromoted  bool          `json:"is_promoted" bson:"is_promoted"`
	Condition   string        `json:"condition,omitempty" bson:"condition,omitempty"`
}

func (l Listing) IsSold() bool {
	return l.Status == ListingSold
}

func (l Listing) NumericPrice() (float64, bool) {
	return ParsePrice(l.Price)
}

// ParsePrice parses a currency-prefixed amount such as "$1,200.00".
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatPrice renders a user-entered amount in the "$<amount>" display form.
// The amount is kept as typed so "$70" stays "$70" rather than "$70.00".
func FormatPrice(amount string) string {
	return "$" + strings.TrimPrefix(strings.TrimSpace(amount), "$")
}

func (l Listing) Clone() Listing {
	out := l
	out.Sizes = append([]string(nil), l.Sizes...)
	out.Colors = append([]string(nil), l.Colors...)
	return out
}
