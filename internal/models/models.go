package models

// Variant is one purchasable size of a product.
type Variant struct {
	Weight string `db:"weight" json:"weight"`
	Price  int64  `db:"price" json:"price"`
	SKU    string `db:"sku" json:"sku"`
}

// Product is an immutable catalog entry, loaded once at startup.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	Images           []string  `json:"images,omitempty"`
	Rating           float64   `json:"rating"`
	ReviewsCount     int       `json:"reviews_count"`
	Tags             []string  `json:"tags"`
	Variants         []Variant `json:"variants"`
}

// CartItem is one cart line. Identity is the (ProductID, VariantWeight)
// pair; Price is the snapshot captured on first add and never refreshed
// from the catalog.
type CartItem struct {
	ProductID     string `json:"product_id"`
	VariantWeight string `json:"variant_weight"`
	Quantity      int    `json:"quantity"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	Image         string `json:"image"`
}

// Discount kinds
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

// Coupon is immutable reference data. Code matching is case-insensitive.
type Coupon struct {
	Code          string `db:"code" json:"code"`
	DiscountType  string `db:"discount_type" json:"discount_type"`
	Value         int64  `db:"value" json:"value"`
	MinOrderValue int64  `db:"min_order_value" json:"min_order_value,omitempty"`
	Description   string `db:"description" json:"description"`
}

// Address is a saved shipping address, append-only on the user.
type Address struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the session-scoped account. It lives from login to logout and is
// never persisted across restarts.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Addresses []Address `json:"addresses"`
}

// Order statuses, forward-only: Processing -> Shipped -> Delivered.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// Order is a placed order. Items is a value copy of the cart taken at
// placement time; later cart mutations must not reach it.
type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customer_name"`
	Total        int64      `json:"total"`
	Status       string     `json:"status"`
	Date         string     `json:"date"`
	Items        []CartItem `json:"items"`
}

// CloneItems returns a value copy of an item slice.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
