// Package products implements the in-memory ordered product list shown on the
// products page. The list is deliberately not persisted across runs: the store
// is re-seeded with the sample products on every construction.
package products

import (
	"sync"

	"farmstead/internal/models"

	"github.com/google/uuid"
)

// Input carries the fields of a product record without its id, as produced by
// the product form after validation.
type Input struct {
	Name          string
	Category      models.ProductCategory
	Unit          models.ProductUnit
	CurrentStock  float64
	PurchasePrice float64
}

// Store is an ordered in-memory product list. New products are prepended;
// updates keep the record's position.
type Store struct {
	mu    sync.RWMutex
	items []models.Product
}

// NewStore returns a store seeded with the sample products.
func NewStore() *Store {
	return &Store{items: seedProducts()}
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: uuid.NewString(), Name: "Wheat Seeds", Category: models.CategorySeeds, Unit: models.UnitKg, CurrentStock: 100, PurchasePrice: 120},
		{ID: uuid.NewString(), Name: "Organic Fertilizer", Category: models.CategoryFertilizer, Unit: models.UnitBags, CurrentStock: 20, PurchasePrice: 250},
		{ID: uuid.NewString(), Name: "Animal Feed", Category: models.CategoryLivestockFeed, Unit: models.UnitTons, CurrentStock: 8, PurchasePrice: 900},
	}
}

// List returns a copy of the product list in display order.
func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Create assigns a fresh id to in and prepends the record to the list.
func (s *Store) Create(in Input) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Product{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Category:      in.Category,
		Unit:          in.Unit,
		CurrentStock:  in.CurrentStock,
		PurchasePrice: in.PurchasePrice,
	}
	s.items = append([]models.Product{p}, s.items...)
	return p
}

// Update replaces every field but the id on the matching record, keeping its
// position in the list.
func (s *Store) Update(id string, in Input) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.ID == id {
			updated := models.Product{
				ID:            id,
				Name:          in.Name,
				Category:      in.Category,
				Unit:          in.Unit,
				CurrentStock:  in.CurrentStock,
				PurchasePrice: in.PurchasePrice,
			}
			s.items[i] = updated
			return updated, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
