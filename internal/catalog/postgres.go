package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresSource loads the catalog from a relational store. It serves the
// same read-only contract as the static seed; the core never writes here.
type PostgresSource struct {
	db *sqlx.DB
}

// NewPostgresSource connects to the catalog database.
func NewPostgresSource(databaseURL string) (*PostgresSource, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	return &PostgresSource{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

type productRow struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	ShortDescription string         `db:"short_description"`
	Description      string         `db:"description"`
	Image            string         `db:"image"`
	Images           pq.StringArray `db:"images"`
	Rating           float64        `db:"rating"`
	ReviewsCount     int            `db:"reviews_count"`
	Tags             pq.StringArray `db:"tags"`
}

type variantRow struct {
	ProductID string `db:"product_id"`
	Weight    string `db:"weight"`
	Price     int64  `db:"price"`
	SKU       string `db:"sku"`
}

func (s *PostgresSource) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var rows []productRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, name, short_description, description, image, images, rating, reviews_count, tags FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}

	var variants []variantRow
	err = s.db.SelectContext(ctx, &variants,
		"SELECT product_id, weight, price, sku FROM product_variants ORDER BY product_id, price")
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string][]models.Variant, len(rows))
	for _, v := range variants {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], models.Variant{
			Weight: v.Weight,
			Price:  v.Price,
			SKU:    v.SKU,
		})
	}

	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, models.Product{
			ID:               r.ID,
			Name:             r.Name,
			ShortDescription: r.ShortDescription,
			Description:      r.Description,
			Image:            r.Image,
			Images:           []string(r.Images),
			Rating:           r.Rating,
			ReviewsCount:     r.ReviewsCount,
			Tags:             []string(r.Tags),
			Variants:         byProduct[r.ID],
		})
	}
	return products, nil
}

func (s *PostgresSource) LoadCoupons(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := s.db.SelectContext(ctx, &coupons,
		"SELECT code, discount_type, value, min_order_value, description FROM coupons ORDER BY code")
	return coupons, err
}
