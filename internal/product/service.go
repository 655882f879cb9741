package product

import (
	"context"
	"errors"
	"fmt"
)

// UpdateFields carries a partial update. Nil fields preserve the stored value.
type UpdateFields struct {
	Title       *string
	Description *string
	Price       *float64
}

// Service handles product business logic
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new product
func (s *Service) Create(ctx context.Context, title, description string, price float64) (*Product, error) {
	created, err := s.repo.Create(ctx, title, description, price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// List returns every product
func (s *Service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Update applies a partial update to an existing product. Fields left nil
// keep their stored values. Returns ErrNotFound if the id does not exist.
func (s *Service) Update(ctx context.Context, id int64, fields UpdateFields) (*Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	title := existing.Title
	if fields.Title != nil {
		title = *fields.Title
	}
	description := existing.Description
	if fields.Description != nil {
		description = *fields.Description
	}
	price := existing.Price
	if fields.Price != nil {
		price = *fields.Price
	}

	updated, err := s.repo.Update(ctx, id, title, description, price)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return updated, nil
}
