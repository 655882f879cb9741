package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"storefront-api/internal/database"
)

var ErrNotFound = errors.New("product not found")

// Repository handles product data persistence
type Repository interface {
	Create(ctx context.Context, title, description string, price float64) (*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id int64, title, description string, price float64) (*Product, error)
}

// BunRepository implements Repository on top of Bun/Postgres
type BunRepository struct {
	db *bun.DB
}

var _ Repository = (*BunRepository)(nil)

func NewRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// Create inserts a new product
func (r *BunRepository) Create(ctx context.Context, title, description string, price float64) (*Product, error) {
	dbProduct := &database.Product{
		Title:       title,
		Description: description,
		Price:       price,
	}

	_, err := r.db.NewInsert().
		Model(dbProduct).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return mapDBProductToModel(dbProduct), nil
}

// GetByID retrieves a product by id
func (r *BunRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	dbProduct := new(database.Product)
	err := r.db.NewSelect().
		Model(dbProduct).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return mapDBProductToModel(dbProduct), nil
}

// List retrieves all products ordered by id
func (r *BunRepository) List(ctx context.Context) ([]Product, error) {
	var dbProducts []database.Product
	err := r.db.NewSelect().
		Model(&dbProducts).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, *mapDBProductToModel(&dbProducts[i]))
	}

	return products, nil
}

// Update overwrites a product row with the given values
func (r *BunRepository) Update(ctx context.Context, id int64, title, description string, price float64) (*Product, error) {
	dbProduct := new(database.Product)
	err := r.db.NewUpdate().
		Model(dbProduct).
		Set("title = ?", title).
		Set("description = ?", description).
		Set("price = ?", price).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return mapDBProductToModel(dbProduct), nil
}

// mapDBProductToModel converts the database model to the domain model
func mapDBProductToModel(dbp *database.Product) *Product {
	return &Product{
		ID:          dbp.ID,
		Title:       dbp.Title,
		Description: dbp.Description,
		Price:       dbp.Price,
		CreatedAt:   dbp.CreatedAt,
		UpdatedAt:   dbp.UpdatedAt,
	}
}
