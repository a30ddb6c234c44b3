package catalog

import "errors"

// ErrNotFound is returned when a product with the given ID is not in the catalog.
var ErrNotFound = errors.New("product not found")

// ErrEmptyID is returned when trying to store a product with an empty ID.
var ErrEmptyID = errors.New("empty product ID")

// Storage is the main interface for the catalog storage layer.
// Mutations go through Set; callers must not rely on Get returning a
// shared pointer.
type Storage interface {
	Insert(p *Product) error
	Get(id string) (*Product, error)
	Set(p *Product) error
	Delete(id string)
	All() []*Product
}

// LocalStorage provides an in-memory implementation that keeps products
// in insertion order. It is the register's single copy of the catalog;
// there is no caching layer in front of it.
type LocalStorage struct {
	products []*Product
}

// NewLocalStorage instantiates an empty LocalStorage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

// Insert appends a product. Returns ErrEmptyID if the product has an
// empty ID.
func (l *LocalStorage) Insert(p *Product) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	l.products = append(l.products, p)
	return nil
}

// Get retrieves a product by ID. Returns ErrNotFound if no product
// matches.
func (l *LocalStorage) Get(id string) (*Product, error) {
	for _, p := range l.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Set replaces the stored product carrying the same ID. Returns
// ErrNotFound if no product matches and ErrEmptyID on an empty ID.
func (l *LocalStorage) Set(p *Product) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	for i, existing := range l.products {
		if existing.ID == p.ID {
			l.products[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the product with the given ID. Deleting an absent ID
// is a no-op.
func (l *LocalStorage) Delete(id string) {
	for i, p := range l.products {
		if p.ID == id {
			l.products = append(l.products[:i], l.products[i+1:]...)
			return
		}
	}
}

// All returns every product in insertion order.
func (l *LocalStorage) All() []*Product {
	out := make([]*Product, len(l.products))
	copy(out, l.products)
	return out
}
