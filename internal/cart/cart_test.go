package cart

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"fashion_pos/internal/catalog"
)

func newTestCart(t *testing.T) (*Cart, *catalog.Service) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	storage := catalog.NewLocalStorage()
	if err := catalog.Seed(storage); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	svc := catalog.NewService(storage, logger)
	return New(svc, logger), svc
}

// checkCeiling asserts the cart invariant: every line's quantity stays
// within the product's current stock.
func checkCeiling(t *testing.T, c *Cart) {
	t.Helper()
	for _, item := range c.Snapshot() {
		if item.Quantity > item.Product.Stock {
			t.Errorf("line for %s has quantity %d above stock %d",
				item.Product.ID, item.Quantity, item.Product.Stock)
		}
	}
}

func TestAddItemIncrements(t *testing.T) {
	c, _ := newTestCart(t)

	if err := c.AddItem("1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := c.AddItem("1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	items := c.Snapshot()
	if len(items) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", items[0].Quantity)
	}
	if c.TotalUnits() != 2 {
		t.Errorf("total units = %d, want 2", c.TotalUnits())
	}
}

func TestAddItemOutOfStock(t *testing.T) {
	c, svc := newTestCart(t)

	if _, err := svc.AdjustStock("2", -8); err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	if err := c.AddItem("2"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if len(c.Snapshot()) != 0 {
		t.Error("expected no line for an out-of-stock product")
	}
}

func TestAddItemStopsAtStockCeiling(t *testing.T) {
	c, _ := newTestCart(t)

	// Flannel shirt has 6 in stock; the seventh add is ignored.
	for i := 0; i < 7; i++ {
		if err := c.AddItem("5"); err != nil {
			t.Fatalf("AddItem returned error: %v", err)
		}
	}
	items := c.Snapshot()
	if len(items) != 1 || items[0].Quantity != 6 {
		t.Errorf("expected one line with quantity 6, got %+v", items)
	}
	checkCeiling(t, c)
}

func TestAddItemUnknownProduct(t *testing.T) {
	c, _ := newTestCart(t)

	if err := c.AddItem("nonexistent"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetQuantity(t *testing.T) {
	c, _ := newTestCart(t)

	if err := c.AddItem("1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := c.SetQuantity("1", 10); err != nil {
		t.Fatalf("SetQuantity returned error: %v", err)
	}
	if c.TotalUnits() != 10 {
		t.Errorf("total units = %d, want 10", c.TotalUnits())
	}

	// Requests above stock are rejected, not clamped.
	if err := c.SetQuantity("1", 16); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if c.TotalUnits() != 10 {
		t.Errorf("quantity changed after a rejected request: %d", c.TotalUnits())
	}
	checkCeiling(t, c)

	// Zero removes the line.
	if err := c.SetQuantity("1", 0); err != nil {
		t.Fatalf("SetQuantity returned error: %v", err)
	}
	if len(c.Snapshot()) != 0 {
		t.Error("expected the line to be removed")
	}
}

func TestSetQuantityWithoutLine(t *testing.T) {
	c, _ := newTestCart(t)

	if err := c.SetQuantity("3", 2); err != nil {
		t.Fatalf("SetQuantity returned error: %v", err)
	}
	if len(c.Snapshot()) != 0 {
		t.Error("SetQuantity should not create a line")
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	c, _ := newTestCart(t)

	_ = c.AddItem("1")
	_ = c.AddItem("2")

	c.RemoveItem("1")
	if len(c.Snapshot()) != 1 {
		t.Errorf("cart has %d lines after remove, want 1", len(c.Snapshot()))
	}
	c.RemoveItem("nonexistent")

	c.Clear()
	if c.TotalUnits() != 0 {
		t.Errorf("total units = %d after clear, want 0", c.TotalUnits())
	}
}

func TestVanishedProductInvalidatesLine(t *testing.T) {
	c, svc := newTestCart(t)

	_ = c.AddItem("4")
	svc.Remove("4")

	if len(c.Snapshot()) != 0 {
		t.Error("line should be dropped when its product is deleted")
	}
	if c.TotalUnits() != 0 {
		t.Errorf("total units = %d, want 0", c.TotalUnits())
	}
}

func TestStockEditLowersQuantity(t *testing.T) {
	c, svc := newTestCart(t)

	for i := 0; i < 3; i++ {
		_ = c.AddItem("1")
	}
	// Inventory management shrinks the stock below the cart quantity;
	// the next cart action re-reads the ceiling.
	if _, err := svc.AdjustStock("1", -13); err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	if c.TotalUnits() != 2 {
		t.Errorf("total units = %d, want 2 after stock shrank", c.TotalUnits())
	}
	checkCeiling(t, c)
}
