package entity

type UserStats struct {
	Orders    int `json:"orders" bson:"orders"`
	Favorites int `json:"favorites" bson:"favorites"`
}

type User struct {
	ID          int64     `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	AvatarURL   string    `json:"avatar_url" bson:"avatar_url"`
	MemberSince string    `json:"member_since" bson:"member_since"`
	Stats       UserStats `json:"stats" bson:"stats"`
	Reviews     int       `json:"reviews" bson:"reviews"`
	IsAdmin     bool      `json:"is_admin" bson:"is_admin"`
}

func (u User) AsSeller() Seller {
	return Seller{
		ID:          u.ID,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		Reviews:     u.Reviews,
		MemberSince: u.MemberSince,
	}
}

type AddressType string

const (
	AddressHome  AddressType = "Home"
	AddressWork  AddressType = "Work"
	AddressOther AddressType = "Other"
)

type Address struct {
	ID        int64       `json:"id" bson:"id"`
	Type      AddressType `json:"type" bson:"type"`
	FullName  string      `json:"full_name" bson:"full_name"`
	Street    string      `json:"street" bson:"street"`
	City      string      `json:"city" bson:"city"`
	State     string      `json:"state" bson:"state"`
	Zip       string      `json:"zip" bson:"zip"`
	Country   string      `json:"country" bson:"country"`
	IsDefault bool        `json:"is_default" bson:"is_default"`
}

type PaymentMethod struct {
	ID             int64  `json:"id" bson:"id"`
	Type           string `json:"type" bson:"type"`
	Last4          string `json:"last4,omitempty" bson:"last4,omitempty"`
	CardholderName string `json:"cardholder_name,omitempty" bson:"cardholder_name,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
	IsDefault      bool   `json:"is_default" bson:"is_default"`
}

func (p PaymentMethod) Label() string {
	if p.Last4 != "" {
		return p.Type + " ending in " + p.Last4
	}
	if p.Email != "" {
		return p.Type + " (" + p.Email + ")"
	}
	return p.Type
}
