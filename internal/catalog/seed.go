package catalog

import (
	"context"

	"github.com/PYTHTRADER/e-commerce/internal/models"
)

// StaticSource is the built-in seed catalog, used when no DATABASE_URL is
// configured.
type StaticSource struct{}

// Static returns the seed catalog source.
func Static() *StaticSource {
	return &StaticSource{}
}

func (*StaticSource) LoadProducts(context.Context) ([]models.Product, error) {
	return []models.Product{
		{
			ID:               "p1",
			Name:             "Natural Peanut Butter",
			ShortDescription: "100% Roasted Peanuts, No Added Sugar.",
			Description:      "Experience the pure taste of high-quality peanuts roasted to perfection. Our Natural Peanut Butter is rich in protein, heart-healthy fats, and contains zero added sugar or preservatives. Perfect for fitness enthusiasts.",
			Image:            "https://images.unsplash.com/photo-1620916297397-a4a5402a3c6c?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1620916297397-a4a5402a3c6c?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1514361892635-6b07e31e75f9?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1555675404-5d519d9b6e68?auto=format&fit=crop&q=80&w=800",
			},
			Rating:       4.8,
			ReviewsCount: 1240,
			Tags:         []string{"Best Seller", "Vegan", "Keto"},
			Variants: []models.Variant{
				{Weight: "500g", Price: 262, SKU: "NPB-500"},
				{Weight: "1kg", Price: 449, SKU: "NPB-1000"},
			},
		},
		{
			ID:               "p2",
			Name:             "Choco Nut Delights",
			ShortDescription: "Decadent chocolate swirl with crunch.",
			Description:      "A guilt-free dessert replacement. Premium cocoa blended with our signature roasted peanuts. High protein meets high taste. Kids love it, adults crave it.",
			Image:            "https://picsum.photos/id/835/600/600",
			Images: []string{
				"https://picsum.photos/id/835/600/600",
				"https://picsum.photos/id/425/600/600",
				"https://picsum.photos/id/312/600/600",
			},
			Rating:       4.9,
			ReviewsCount: 856,
			Tags:         []string{"New Arrival", "Sweet", "Kids Favorite"},
			Variants: []models.Variant{
				{Weight: "500g", Price: 349, SKU: "CND-500"},
				{Weight: "1kg", Price: 599, SKU: "CND-1000"},
			},
		},
		{
			ID:               "p3",
			Name:             "Crunchy Honey Roast",
			ShortDescription: "Sweetened with organic honey.",
			Description:      "The perfect balance of sweet and savory. Roasted with organic honey for a caramelized crunch that adds texture to your morning toast or smoothie bowls.",
			Image:            "https://picsum.photos/id/493/600/600",
			Images: []string{
				"https://picsum.photos/id/493/600/600",
				"https://picsum.photos/id/429/600/600",
				"https://picsum.photos/id/488/600/600",
			},
			Rating:       4.7,
			ReviewsCount: 430,
			Tags:         []string{"Organic", "Crunchy"},
			Variants: []models.Variant{
				{Weight: "500g", Price: 299, SKU: "CHR-500"},
				{Weight: "1kg", Price: 549, SKU: "CHR-1000"},
			},
		},
	}, nil
}

func (*StaticSource) LoadCoupons(context.Context) ([]models.Coupon, error) {
	return []models.Coupon{
		{Code: "WELCOME20", DiscountType: models.DiscountPercentage, Value: 20, Description: "20% Off your first order"},
		{Code: "SAVE50", DiscountType: models.DiscountFixed, Value: 50, MinOrderValue: 500, Description: "Flat ₹50 off on orders above ₹500"},
	}, nil
}

// SeedOrders are the historical ledger entries installed on first boot.
func SeedOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-001", CustomerName: "Arjun Verma", Total: 898, Status: models.OrderStatusDelivered, Date: "2023-10-15", Items: []models.CartItem{}},
		{ID: "ORD-002", CustomerName: "Zara Khan", Total: 1198, Status: models.OrderStatusShipped, Date: "2023-10-20", Items: []models.CartItem{}},
		{ID: "ORD-003", CustomerName: "Leo Das", Total: 449, Status: models.OrderStatusProcessing, Date: "2023-10-22", Items: []models.CartItem{}},
	}
}
