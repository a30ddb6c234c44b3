package catalog

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultImage is used when a draft does not provide an image reference.
const DefaultImage = "/placeholder.svg?height=200&width=200"

// lowStockThreshold marks products that are about to run out.
const lowStockThreshold = 5

// ValidationError reports the required product fields that are missing
// or not numeric. The operation that produced it left no partial state
// behind.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid product: " + strings.Join(e.Fields, ", ")
}

// Service provides catalog management operations on a Storage backend.
// Every mutation is immediately visible to the cart and checkout; the
// register holds a single in-memory copy of the catalog.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns products in insertion order. A non-empty query filters
// case-insensitively over name, barcode, category and color.
func (s *Service) List(query string) []*Product {
	all := s.storage.All()
	if query == "" {
		return all
	}
	q := strings.ToLower(query)
	filtered := make([]*Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(p.Barcode, query) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Color), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get retrieves a product by ID.
func (s *Service) Get(id string) (*Product, error) {
	return s.storage.Get(id)
}

// Add validates the draft and appends a new product with a freshly
// generated ID. A draft with missing or non-numeric required fields is
// rejected with a ValidationError naming every offending field.
func (s *Service) Add(draft Draft) (*Product, error) {
	price, stock, verr := validateDraft(draft)
	if verr != nil {
		s.logger.Warn("rejected product draft", zap.Strings("fields", verr.Fields))
		return nil, verr
	}

	image := draft.Image
	if image == "" {
		image = DefaultImage
	}
	p := &Product{
		ID:       uuid.NewString(),
		Name:     draft.Name,
		Barcode:  draft.Barcode,
		Price:    price,
		Category: draft.Category,
		Size:     draft.Size,
		Color:    draft.Color,
		Stock:    stock,
		Image:    image,
	}

	if err := s.storage.Insert(p); err != nil {
		s.logger.Error("failed to save product", zap.String("product_id", p.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("product added", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Update replaces the non-empty draft fields on an existing product.
// Returns ErrNotFound if the ID is absent and a ValidationError if a
// provided price or stock does not parse; either way the product is
// left untouched.
func (s *Service) Update(id string, draft Draft) (*Product, error) {
	p, err := s.storage.Get(id)
	if err != nil {
		return nil, err
	}

	var invalid []string
	price := p.Price
	if draft.Price != "" {
		v, err := decimal.NewFromString(draft.Price)
		if err != nil || v.IsNegative() {
			invalid = append(invalid, "price")
		} else {
			price = v
		}
	}
	stock := p.Stock
	if draft.Stock != "" {
		v, err := strconv.Atoi(draft.Stock)
		if err != nil || v < 0 {
			invalid = append(invalid, "stock")
		} else {
			stock = v
		}
	}
	if len(invalid) > 0 {
		s.logger.Warn("rejected product edit", zap.String("product_id", id), zap.Strings("fields", invalid))
		return nil, &ValidationError{Fields: invalid}
	}

	if draft.Name != "" {
		p.Name = draft.Name
	}
	if draft.Barcode != "" {
		p.Barcode = draft.Barcode
	}
	if draft.Category != "" {
		p.Category = draft.Category
	}
	if draft.Size != "" {
		p.Size = draft.Size
	}
	if draft.Color != "" {
		p.Color = draft.Color
	}
	if draft.Image != "" {
		p.Image = draft.Image
	}
	p.Price = price
	p.Stock = stock

	if err := s.storage.Set(p); err != nil {
		s.logger.Error("failed to save product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("product updated", zap.String("product_id", id))
	return p, nil
}

// Remove deletes the product with the given ID. Removing an absent ID
// is an idempotent no-op.
func (s *Service) Remove(id string) {
	s.storage.Delete(id)
	s.logger.Info("product removed", zap.String("product_id", id))
}

// AdjustStock applies a delta to the product's stock and returns the
// new level. The result is clamped at zero, never negative.
func (s *Service) AdjustStock(id string, delta int) (int, error) {
	p, err := s.storage.Get(id)
	if err != nil {
		return 0, err
	}
	next := p.Stock + delta
	if next < 0 {
		next = 0
	}
	p.Stock = next
	if err := s.storage.Set(p); err != nil {
		s.logger.Error("failed to save stock level", zap.String("product_id", id), zap.Error(err))
		return 0, err
	}
	return next, nil
}

// Summary holds the dashboard numbers shown above the register.
type Summary struct {
	TotalProducts int             `json:"total_products"`
	LowStock      int             `json:"low_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Categories    map[string]int  `json:"categories"`
}

// Summarize computes product count, low-stock and out-of-stock counts,
// total inventory value and per-category counts over the whole catalog.
func (s *Service) Summarize() Summary {
	sum := Summary{
		TotalValue: decimal.Zero,
		Categories: map[string]int{},
	}
	for _, p := range s.storage.All() {
		sum.TotalProducts++
		if p.Stock == 0 {
			sum.OutOfStock++
		}
		if p.Stock <= lowStockThreshold {
			sum.LowStock++
		}
		sum.TotalValue = sum.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		sum.Categories[p.Category]++
	}
	return sum
}

// validateDraft checks the required fields for a new product: name,
// barcode, price, color and stock. Price must be a non-negative decimal
// and stock a non-negative integer.
func validateDraft(d Draft) (decimal.Decimal, int, *ValidationError) {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Barcode == "" {
		missing = append(missing, "barcode")
	}
	var price decimal.Decimal
	if d.Price == "" {
		missing = append(missing, "price")
	} else if v, err := decimal.NewFromString(d.Price); err != nil || v.IsNegative() {
		missing = append(missing, "price")
	} else {
		price = v
	}
	if d.Color == "" {
		missing = append(missing, "color")
	}
	var stock int
	if d.Stock == "" {
		missing = append(missing, "stock")
	} else if v, err := strconv.Atoi(d.Stock); err != nil || v < 0 {
		missing = append(missing, "stock")
	} else {
		stock = v
	}
	if len(missing) > 0 {
		return decimal.Decimal{}, 0, &ValidationError{Fields: missing}
	}
	return price, stock, nil
}
