package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/PYTHTRADER/e-commerce/internal/models"
)

// Source supplies the read-only product and coupon reference data. It is
// consulted exactly once, at startup.
type Source interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
	LoadCoupons(ctx context.Context) ([]models.Coupon, error)
}

// Catalog is the immutable, indexed view of a Source. Nothing mutates it
// after Load returns.
type Catalog struct {
	products  []models.Product
	productBy map[string]*models.Product
	couponBy  map[string]*models.Coupon
}

// Load reads the source and builds the lookup indexes. Coupon codes are
// indexed upper-cased so lookups are case-insensitive.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	coupons, err := src.LoadCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load coupons: %w", err)
	}

	c := &Catalog{
		products:  products,
		productBy: make(map[string]*models.Product, len(products)),
		couponBy:  make(map[string]*models.Coupon, len(coupons)),
	}
	for i := range c.products {
		c.productBy[c.products[i].ID] = &c.products[i]
	}
	for i := range coupons {
		coupon := coupons[i]
		c.couponBy[strings.ToUpper(coupon.Code)] = &coupon
	}
	return c, nil
}

// Products returns all catalog products.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// ProductByID returns the product with the given ID, or nil.
func (c *Catalog) ProductByID(id string) *models.Product {
	return c.productBy[id]
}

// VariantOf returns the variant of a product matching the weight class.
func (c *Catalog) VariantOf(productID, weight string) (*models.Product, *models.Variant, error) {
	product := c.productBy[productID]
	if product == nil {
		return nil, nil, fmt.Errorf("product not found: %s", productID)
	}
	for i := range product.Variants {
		if product.Variants[i].Weight == weight {
			return product, &product.Variants[i], nil
		}
	}
	return nil, nil, fmt.Errorf("variant not found: %s/%s", productID, weight)
}

// CouponByCode looks up a coupon, ignoring case and surrounding whitespace.
func (c *Catalog) CouponByCode(code string) *models.Coupon {
	return c.couponBy[strings.ToUpper(strings.TrimSpace(code))]
}

// Coupons returns all known coupons.
func (c *Catalog) Coupons() []models.Coupon {
	out := make([]models.Coupon, 0, len(c.couponBy))
	for _, coupon := range c.couponBy {
		out = append(out, *coupon)
	}
	return out
}
