// Package seed holds the marketplace's initial data set.
package seed

import (
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

const (
	CurrentUserID int64 = 99

	DefaultAdImage = "https://images.unsplash.com/photo-1598327105666-65845214a0a2?q=80&w=400"
)

// Data is one full snapshot of every collection the store keeps.
type Data struct {
	Listings       []entity.Listing
	Chats          []entity.ChatSummary
	Ads            []entity.Ad
	Conversations  []*entity.Conversation
	Notifications  []entity.Notification
	PaymentMethods []entity.PaymentMethod
	Addresses      []entity.Address
	Users          []entity.User
	Activities     []entity.RecentActivity
	Reviews        []entity.Review
}

// Initial builds a fresh copy of the initial data; callers may mutate it.
func Initial() Data {
	sellers := Sellers()
	listings := listings(sellers)

	return Data{
		Listings:       listings,
		Chats:          chats(sellers),
		Ads:            ads(listings),
		Conversations:  conversations(listings),
		Notifications:  notifications(),
		PaymentMethods: paymentMethods(),
		Addresses:      addresses(),
		Users:          users(sellers),
		Activities:     activities(sellers, listings),
		Reviews:        reviews(),
	}
}

func Sellers() []entity.Seller {
	return []entity.Seller{
		{ID: 1, Name: "John Doe", AvatarURL: "https://i.pravatar.cc/150?u=seller1", Reviews: 125, MemberSince: "Jan 2022", ContactCount: 12},
		{ID: 2, Name: "Jane Smith", AvatarURL: "https://i.pravatar.cc/150?u=seller2", Reviews: 210, MemberSince: "Mar 2021", ContactCount: 34},
		{ID: 3, Name: "Sam Wilson", AvatarURL: "https://i.pravatar.cc/150?u=seller3", Reviews: 88, MemberSince: "Jun 2022"},
		{ID: 4, Name: "Alice Johnson", AvatarURL: "https://i.pravatar.cc/150?u=seller4", Reviews: 301, MemberSince: "Sep 2020"},
		{ID: 5, Name: "Bob Brown", AvatarURL: "https://i.pravatar.cc/150?u=seller5", Reviews: 150, MemberSince: "Feb 2023", ContactCount: 5},
	}
}

func CurrentUser() entity.User {
	return entity.User{
		ID:          CurrentUserID,
		Name:        "Alex Morgan",
		Email:       "alex.morgan@example.com",
		AvatarURL:   "https://i.pravatar.cc/150?u=current-user",
		MemberSince: "Jan 2023",
		Stats:       entity.UserStats{Orders: 5, Favorites: 12},
		Reviews:     8,
		IsAdmin:     true,
	}
}

func listings(s []entity.Seller) []entity.Listing {
	return []entity.Listing{
		{ID: 1, Title: "Vintage Leather Jacket", Description: "Classic brown leather jacket, great for all seasons. Size M.", Price: "$120.00", ImageURL: "https://images.unsplash.com/photo-1551028719-00167b16eac5?q=80&w=400", Category: "Fashion", Location: "Los Angeles, CA", Seller: s[0], Colors: []string{"Brown", "Black"}, Sizes: []string{"S", "M", "L"}, Material: "Genuine Leather", Status: entity.ListingAvailable, Badge: entity.BadgeFeatured, Condition: "Used - Good", IsPromoted: true},
		{ID: 2, Title: "Acoustic Guitar", Description: "Full-sized dreadnought acoustic guitar. Great for beginners. Comes with a soft case.", Price: "$250.00", ImageURL: "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?q=80&w=400", Category: "Hobbies", Location: "Los Angeles, CA", Seller: s[1], Status: entity.ListingSold, Material: "Spruce Wood", Condition: "Used - Like New"},
		{ID: 3, Title: "Modern Bookshelf", Description: "Minimalist bookshelf with 5 tiers. Solid oak. Perfect for any room.", Price: "$75.00", ImageURL: "https://images.unsplash.com/photo-1533749459272-35914599e287?q=80&w=400", Category: "Furniture", Location: "Chicago, IL", Seller: s[2], Status: entity.ListingAvailable, Material: "Oak Wood", Condition: "Used - Good"},
		{ID: 4, Title: "Professional Camera Drone", Description: "4K camera drone with 3-axis gimbal. 30 minutes flight time. Like new.", Price: "$450.00", ImageURL: "https://images.unsplash.com/photo-1507525428034-b723a9ce6890?q=80&w=400", Category: "Electronics", Location: "Houston, TX", Seller: s[3], Status: entity.ListingAvailable, Badge: entity.BadgeNew, Condition: "New"},
		{ID: 5, Title: "Mountain Bike", Description: "29-inch wheels, hydraulic disc brakes. Great for trails.", Price: "$300.00", ImageURL: "https://images.unsplash.com/photo-1570425332214-95723bda6974?q=80&w=400", Category: "Bikes", Location: "Denver, CO", Seller: s[4], Status: entity.ListingAvailable, Material: "Aluminum Alloy", Condition: "Used - Like New"},
		{ID: 6, Title: "Designer Sunglasses", Description: "UV400 protection, polarized lenses. Stylish and functional.", Price: "$90.00", ImageURL: "https://images.unsplash.com/photo-1511499767150-a48a237f0083?q=80&w=400", Category: "Fashion", Location: "Miami, FL", Seller: s[0], Status: entity.ListingSold, Condition: "Used - Good"},
		{ID: 7, Title: "Latest Smartphone", Description: "Latest model with 256GB storage. Unlocked. Comes with original packaging.", Price: "$650.00", ImageURL: "https://images.unsplash.com/photo-1580910051074-3eb694886505?q=80&w=400", Category: "Mobiles", Location: "San Francisco, CA", Seller: s[1], Status: entity.ListingAvailable, Badge: entity.BadgeNew, Condition: "New"},
		{ID: 8, Title: "Compact Sedan", Description: "2019 model, low mileage, great fuel efficiency. Perfect for city driving.", Price: "$8500.00", ImageURL: "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?q=80&w=400", Category: "Cars", Location: "Austin, TX", Seller: s[2], Status: entity.ListingAvailable, Condition: "Used - Good"},
		{ID: 9, Title: "Gaming Laptop", Description: "High-performance gaming laptop with RTX 3070. 1TB SSD, 16GB RAM.", Price: "$1200.00", ImageURL: "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=400", Category: "Electronics", Location: "Seattle, WA", Seller: s[3], Status: entity.ListingAvailable, Condition: "Used - Like New"},
	}
}

func chats(s []entity.Seller) []entity.ChatSummary {
	return []entity.ChatSummary{
		{ID: 1, Name: s[0].Name, AvatarURL: s[0].AvatarURL, LastMessage: "Hey, I saw your ad for the vintage camera. Is it still available?", Timestamp: "10:00 AM", Unread: true, IsFavorite: true, Type: entity.ChatSelling, Reviews: s[0].Reviews, Online: true},
		{ID: 2, Name: s[1].Name, AvatarURL: s[1].AvatarURL, LastMessage: "Great, I will be there at 5.", Timestamp: "1h ago", Type: entity.ChatBuying, Reviews: s[1].Reviews},
		{ID: 3, Name: s[2].Name, AvatarURL: s[2].AvatarURL, LastMessage: "Can you do $250?", Timestamp: "5h ago", Unread: true, Type: entity.ChatBuying, Reviews: s[2].Reviews, Online: true},
		{ID: 4, Name: s[3].Name, AvatarURL: s[3].AvatarURL, LastMessage: "Thanks for the quick sale!", Timestamp: "1d ago", IsFavorite: true, Type: entity.ChatSelling, Reviews: s[3].Reviews},
		{ID: 5, Name: s[4].Name, AvatarURL: s[4].AvatarURL, LastMessage: "Perfect condition, as described.", Timestamp: "2d ago", Type: entity.ChatSelling, Reviews: s[4].Reviews},
	}
}

func text(id int64, sender entity.Party, ts, body string) entity.Message {
	return entity.Message{ID: id, Text: body, Timestamp: ts, Sender: sender, Type: entity.MessageText}
}

func conversations(l []entity.Listing) []*entity.Conversation {
	item := func(i int) *entity.Listing {
		c := l[i].Clone()
		return &c
	}
	return []*entity.Conversation{
		{
			ID:   1,
			Item: item(0),
			Messages: []entity.Message{
				text(1, entity.PartyOther, "10:00 AM", "Hey, I saw your ad for the vintage camera. Is it still available?"),
				text(2, entity.PartyMe, "10:01 AM", "Hi! Yes, it is still available."),
				text(3, entity.PartyOther, "10:02 AM", "Great! Is the price negotiable?"),
				text(4, entity.PartyMe, "10:03 AM", "I can do a small discount. What are you offering?"),
				text(5, entity.PartyOther, "2m ago", "Is this still available?"),
			},
			PaymentStatus: entity.PaymentPending,
		},
		{ID: 2, Item: item(1), Messages: []entity.Message{text(1, entity.PartyOther, "1h ago", "Great, I will be there at 5.")}, PaymentStatus: entity.PaymentPending},
		{ID: 3, Item: item(4), Messages: []entity.Message{text(1, entity.PartyOther, "5h ago", "Can you do $250?")}, PaymentStatus: entity.PaymentPending},
		{ID: 4, Item: item(5), Messages: []entity.Message{text(1, entity.PartyMe, "1d ago", "Thanks for the quick sale!")}, PaymentStatus: entity.PaymentPaid},
		{ID: 5, Item: item(2), Messages: []entity.Message{text(1, entity.PartyOther, "2d ago", "Perfect condition, as described.")}, PaymentStatus: entity.PaymentPaid},
	}
}

func ads(l []entity.Listing) []entity.Ad {
	return []entity.Ad{
		{ID: 1, Title: "Vintage Leather Jacket", Price: "$120.00", ImageURL: l[0].ImageURL, Status: entity.AdActive, Views: 120, Likes: 15, Category: "Fashion", Description: l[0].Description, Location: l[0].Location, Sizes: []string{"S", "M", "L"}, Colors: []string{"Brown", "Black"}, Material: "Genuine Leather", Condition: "Used - Good", IsPromoted: true},
		{ID: 2, Title: "Acoustic Guitar", Price: "$250.00", ImageURL: l[1].ImageURL, Status: entity.AdSold, Views: 500, Likes: 45, Category: "Hobbies", Description: l[1].Description, Location: l[1].Location, Material: "Spruce Wood", Condition: "Used - Like New"},
		{ID: 3, Title: "Modern Bookshelf", Price: "$75.00", ImageURL: l[2].ImageURL, Status: entity.AdPending, Views: 80, Likes: 5, Category: "Furniture", Description: l[2].Description, Location: l[2].Location, Material: "Oak Wood", Condition: "Used - Good"},
	}
}

func notifications() []entity.Notification {
	return []entity.Notification{
		{ID: 1, Type: entity.NotificationMessage, Text: "John Doe sent you a message.", Timestamp: "2m ago", RelatedID: 1},
		{ID: 2, Type: entity.NotificationOffer, Text: "You have a new offer for your Vintage Leather Jacket.", Timestamp: "1h ago"},
		{ID: 3, Type: entity.NotificationAlert, Text: `Your ad "Acoustic Guitar" has been sold!`, Timestamp: "5h ago", Read: true},
		{ID: 4, Type: entity.NotificationMessage, Text: "Jane Smith replied to your message.", Timestamp: "1d ago", Read: true, RelatedID: 2},
		{ID: 5, Type: entity.NotificationOffer, Text: `Offer of $70 for "Modern Bookshelf" has been accepted.`, Timestamp: "2d ago"},
	}
}

func paymentMethods() []entity.PaymentMethod {
	return []entity.PaymentMethod{
		{ID: 1, Type: "Credit Card", Last4: "4242", CardholderName: "John Doe", ExpiryDate: "12/25", IsDefault: true},
		{ID: 2, Type: "Credit Card", Last4: "1111", CardholderName: "John Doe", ExpiryDate: "08/26"},
		{ID: 3, Type: "PayPal", Email: "john.doe@example.com"},
	}
}

func addresses() []entity.Address {
	return []entity.Address{
		{ID: 1, Type: entity.AddressHome, FullName: "John Doe", Street: "123 Main St", City: "Brooklyn", State: "NY", Zip: "11201", Country: "USA", IsDefault: true},
		{ID: 2, Type: entity.AddressWork, FullName: "John Doe", Street: "456 Market St", City: "Manhattan", State: "NY", Zip: "10001", Country: "USA"},
	}
}

func users(sellers []entity.Seller) []entity.User {
	out := make([]entity.User, 0, len(sellers)+1)
	for _, s := range sellers {
		out = append(out, entity.User{
			ID:          s.ID,
			Name:        s.Name,
			Email:       strings.Replace(strings.ToLower(s.Name), " ", ".", 1) + "@example.com",
			AvatarURL:   s.AvatarURL,
			MemberSince: s.MemberSince,
			Reviews:     s.Reviews,
			Stats:       entity.UserStats{Orders: s.Reviews / 5, Favorites: s.Reviews / 2},
		})
	}
	return append(out, CurrentUser())
}

func activities(s []entity.Seller, l []entity.Listing) []entity.RecentActivity {
	return []entity.RecentActivity{
		{
			ID: 1, Type: entity.ActivityNewListing, Description: "posted a new listing.", Timestamp: "2 hours ago",
			Author:  &entity.ActivityAuthor{Name: s[3].Name, AvatarURL: s[3].AvatarURL},
			Listing: &entity.ActivityListing{Title: l[8].Title, ImageURL: l[8].ImageURL},
		},
		{
			ID: 2, Type: entity.ActivityNewUser, Description: "joined the platform.", Timestamp: "5 hours ago",
			Author: &entity.ActivityAuthor{Name: s[4].Name, AvatarURL: s[4].AvatarURL},
		},
		{
			ID: 3, Type: entity.ActivityNewListing, Description: "posted a new listing.", Timestamp: "1 day ago",
			Author:  &entity.ActivityAuthor{Name: s[2].Name, AvatarURL: s[2].AvatarURL},
			Listing: &entity.ActivityListing{Title: l[7].Title, ImageURL: l[7].ImageURL},
		},
	}
}

func reviews() []entity.Review {
	return []entity.Review{
		{ID: 1, SellerID: 1, AuthorName: "Emily R.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review1", Comment: "Great seller! Fast shipping and item was exactly as described. A pleasure to do business with!", Timestamp: "2 days ago"},
		{ID: 2, SellerID: 1, AuthorName: "Michael B.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review2", Comment: "Good communication and fair price. Would buy from again.", Timestamp: "1 week ago"},
		{ID: 3, SellerID: 2, AuthorName: "Sophia L.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review3", Comment: "Absolutely perfect! The item was in pristine condition. Highly recommend this seller.", Timestamp: "4 days ago"},
		{ID: 4, SellerID: 3, AuthorName: "David C.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review4", Comment: "Very friendly and accommodating seller. The transaction was smooth and easy.", Timestamp: "1 month ago"},
		{ID: 5, SellerID: 3, AuthorName: "Olivia M.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review5", Comment: "Item was as described, but shipping took a bit longer than expected. Overall a positive experience.", Timestamp: "2 months ago"},
		{ID: 6, SellerID: 3, AuthorName: "James P.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review6", Comment: "Fantastic seller! Went above and beyond.", Timestamp: "3 months ago"},
		{ID: 7, SellerID: 4, AuthorName: "Isabella G.", AuthorAvatarURL: "https://i.pravatar.cc/150?u=review7", Comment: "Couldn't be happier with my purchase. The seller is top-notch!", Timestamp: "6 days ago"},
	}
}
