package product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products []Product
	nextID   int64
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) Create(ctx context.Context, title, description string, price float64) (*Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := Product{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.nextID++
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]Product(nil), f.products...), nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, title, description string, price float64) (*Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Title = title
			f.products[i].Description = description
			f.products[i].Price = price
			f.products[i].UpdatedAt = time.Now()
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func ptr[T any](v T) *T { return &v }

func TestService_CreateAndList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "Widget", "A widget", 9.99)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Title)
	assert.Equal(t, "A widget", products[0].Description)
	assert.Equal(t, 9.99, products[0].Price)
}

func TestService_UpdatePriceOnlyPreservesOtherFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "Widget", "A widget", 9.99)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateFields{Price: ptr(19.99)})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Title)
	assert.Equal(t, "A widget", updated.Description)
	assert.Equal(t, 19.99, updated.Price)
}

func TestService_UpdateWithoutPricePreservesPrice(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "Widget", "A widget", 9.99)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdateFields{
		Title:       ptr("Gadget"),
		Description: ptr("A gadget"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Title)
	assert.Equal(t, "A gadget", updated.Description)
	assert.Equal(t, 9.99, updated.Price)
}

func TestService_UpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Update(context.Background(), 999, UpdateFields{Price: ptr(1.0)})
	assert.ErrorIs(t, err, ErrNotFound)
}
