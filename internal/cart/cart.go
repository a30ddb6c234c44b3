package cart

import (
	"errors"

	"go.uber.org/zap"

	"fashion_pos/internal/catalog"
)

// ErrInsufficientStock is returned when a requested quantity exceeds
// the product's current stock. The line is left unchanged rather than
// clamped, so the register never silently oversells.
var ErrInsufficientStock = errors.New("requested quantity exceeds stock")

// Line is a product reference plus the quantity requested at the
// register. Lines never leave the package; Item is the serialized view.
type Line struct {
	ProductID string
	Quantity  int
}

// Item is a line resolved against the catalog for display and pricing.
type Item struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

// Cart accumulates lines for the sale in progress. Stock ceilings are
// re-read from the catalog on every call, so inventory edits made while
// a sale is open take effect on the next cart action. Like the rest of
// the register it assumes a single terminal and is not safe for
// concurrent use.
type Cart struct {
	catalog *catalog.Service
	lines   []Line
	logger  *zap.Logger
}

// New creates an empty cart backed by the given catalog.
func New(catalogService *catalog.Service, logger *zap.Logger) *Cart {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Cart{
		catalog: catalogService,
		logger:  logger,
	}
}

// AddItem puts one unit of the product in the cart, incrementing an
// existing line if there is one. Out-of-stock products and lines
// already at the stock ceiling are silently ignored.
func (c *Cart) AddItem(productID string) error {
	c.prune()
	p, err := c.catalog.Get(productID)
	if err != nil {
		return err
	}
	if p.Stock <= 0 {
		c.logger.Warn("ignored add for out-of-stock product", zap.String("product_id", productID))
		return nil
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Quantity < p.Stock {
				c.lines[i].Quantity++
			}
			return nil
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: 1})
	return nil
}

// SetQuantity sets the requested quantity on an existing line. A
// quantity of zero or less removes the line; a quantity above the
// current stock is rejected with ErrInsufficientStock. Setting a
// quantity for a product that has no line is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	c.prune()
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	p, err := c.catalog.Get(productID)
	if err != nil {
		return err
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// RemoveItem deletes the line for the product unconditionally.
func (c *Cart) RemoveItem(productID string) {
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalUnits is the number of units across all lines.
func (c *Cart) TotalUnits() int {
	c.prune()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Snapshot resolves every line against the current catalog state.
func (c *Cart) Snapshot() []Item {
	c.prune()
	items := make([]Item, 0, len(c.lines))
	for _, l := range c.lines {
		p, err := c.catalog.Get(l.ProductID)
		if err != nil {
			continue
		}
		items = append(items, Item{Product: p, Quantity: l.Quantity})
	}
	return items
}

// prune re-checks every line against current stock: lines whose product
// was deleted or sold out are dropped, and quantities are lowered to a
// shrunken stock ceiling. This keeps quantity <= stock across
// concurrent inventory edits, not just at add time.
func (c *Cart) prune() {
	kept := c.lines[:0]
	for _, l := range c.lines {
		p, err := c.catalog.Get(l.ProductID)
		if err != nil || p.Stock <= 0 {
			continue
		}
		if l.Quantity > p.Stock {
			l.Quantity = p.Stock
		}
		kept = append(kept, l)
	}
	c.lines = kept
}
