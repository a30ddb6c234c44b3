package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLocalStorage(), zaptest.NewLogger(t))
}

func newSeededService(t *testing.T) *Service {
	t.Helper()
	storage := NewLocalStorage()
	if err := Seed(storage); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	return NewService(storage, zaptest.NewLogger(t))
}

func TestAddProduct(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Add(Draft{
		Name:     "Cotton T-Shirt",
		Barcode:  "1234567890123",
		Price:    "25.99",
		Category: "Shirts",
		Size:     "M",
		Color:    "Blue",
		Stock:    "15",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected a generated product ID")
	}
	if !p.Price.Equal(decimal.RequireFromString("25.99")) {
		t.Errorf("price = %s, want 25.99", p.Price)
	}
	if p.Stock != 15 {
		t.Errorf("stock = %d, want 15", p.Stock)
	}
	if p.Image != DefaultImage {
		t.Errorf("expected default image, got %q", p.Image)
	}
	if got := svc.List(""); len(got) != 1 {
		t.Errorf("catalog has %d products, want 1", len(got))
	}
}

func TestAddProductValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(Draft{Name: "Socks", Price: "abc"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"barcode", "price", "color", "stock"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", verr.Fields, want)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Errorf("fields[%d] = %q, want %q", i, verr.Fields[i], f)
		}
	}
	if got := svc.List(""); len(got) != 0 {
		t.Errorf("catalog should be unchanged after a rejected draft, has %d products", len(got))
	}
}

func TestAddProductRejectsNegativeValues(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(Draft{Name: "Socks", Barcode: "111", Price: "-1", Color: "Black", Stock: "-3"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("fields = %v, want price and stock", verr.Fields)
	}
}

func TestUpdateProduct(t *testing.T) {
	svc := newSeededService(t)

	p, err := svc.Update("1", Draft{Name: "Premium T-Shirt", Price: "27.50"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if p.Name != "Premium T-Shirt" {
		t.Errorf("name = %q, want %q", p.Name, "Premium T-Shirt")
	}
	if !p.Price.Equal(decimal.RequireFromString("27.50")) {
		t.Errorf("price = %s, want 27.50", p.Price)
	}
	// Fields not in the draft stay as they were.
	if p.Barcode != "1234567890123" {
		t.Errorf("barcode = %q, want unchanged", p.Barcode)
	}
	if p.Stock != 15 {
		t.Errorf("stock = %d, want unchanged 15", p.Stock)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newSeededService(t)

	if _, err := svc.Update("nonexistent", Draft{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProductInvalidNumber(t *testing.T) {
	svc := newSeededService(t)

	_, err := svc.Update("1", Draft{Price: "not-a-price"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	p, _ := svc.Get("1")
	if !p.Price.Equal(decimal.RequireFromString("25.99")) {
		t.Errorf("price changed after rejected edit: %s", p.Price)
	}
}

func TestRemoveProductIdempotent(t *testing.T) {
	svc := newSeededService(t)

	svc.Remove("nonexistent")
	if got := svc.List(""); len(got) != 5 {
		t.Errorf("catalog has %d products after removing an unknown ID, want 5", len(got))
	}

	svc.Remove("3")
	if _, err := svc.Get("3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("product 3 still present after remove")
	}
	svc.Remove("3")
	if got := svc.List(""); len(got) != 4 {
		t.Errorf("catalog has %d products, want 4", len(got))
	}
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	svc := newSeededService(t)

	stock, err := svc.AdjustStock("5", -100)
	if err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	if stock != 0 {
		t.Errorf("stock = %d, want 0", stock)
	}

	stock, err = svc.AdjustStock("5", 2)
	if err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	if stock != 2 {
		t.Errorf("stock = %d, want 2", stock)
	}

	if _, err := svc.AdjustStock("nonexistent", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newSeededService(t)

	got := svc.List("")
	want := []string{"1", "2", "3", "4", "5"}
	if len(got) != len(want) {
		t.Fatalf("List returned %d products, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestListFilters(t *testing.T) {
	svc := newSeededService(t)

	if got := svc.List("polo"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("List(polo) = %d products, want the Polo Shirt", len(got))
	}
	if got := svc.List("1234567890125"); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("barcode search failed, got %d products", len(got))
	}
	if got := svc.List("plaid"); len(got) != 1 || got[0].ID != "5" {
		t.Errorf("color search failed, got %d products", len(got))
	}
	if got := svc.List("no-such-thing"); len(got) != 0 {
		t.Errorf("List(no-such-thing) = %d products, want 0", len(got))
	}
}

// copyingStorage wraps LocalStorage and hands out defensive copies, so
// a write only survives if the service persists it through Set instead
// of mutating the pointer it got from Get.
type copyingStorage struct {
	inner *LocalStorage
}

func (c *copyingStorage) Insert(p *Product) error { return c.inner.Insert(p) }
func (c *copyingStorage) Set(p *Product) error    { return c.inner.Set(p) }
func (c *copyingStorage) Delete(id string)        { c.inner.Delete(id) }

func (c *copyingStorage) Get(id string) (*Product, error) {
	p, err := c.inner.Get(id)
	if err != nil {
		return nil, err
	}
	copied := *p
	return &copied, nil
}

func (c *copyingStorage) All() []*Product {
	all := c.inner.All()
	out := make([]*Product, len(all))
	for i, p := range all {
		copied := *p
		out[i] = &copied
	}
	return out
}

func TestMutationsPersistThroughStorage(t *testing.T) {
	storage := &copyingStorage{inner: NewLocalStorage()}
	if err := Seed(storage); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	svc := NewService(storage, zaptest.NewLogger(t))

	if _, err := svc.Update("1", Draft{Price: "27.50"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	p, err := svc.Get("1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !p.Price.Equal(decimal.RequireFromString("27.50")) {
		t.Errorf("price = %s after update, want 27.50", p.Price)
	}

	if _, err := svc.AdjustStock("1", -5); err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	p, err = svc.Get("1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if p.Stock != 10 {
		t.Errorf("stock = %d after adjust, want 10", p.Stock)
	}
}

func TestSummarize(t *testing.T) {
	svc := newSeededService(t)

	sum := svc.Summarize()
	if sum.TotalProducts != 5 {
		t.Errorf("total products = %d, want 5", sum.TotalProducts)
	}
	if sum.LowStock != 0 || sum.OutOfStock != 0 {
		t.Errorf("low/out of stock = %d/%d, want 0/0", sum.LowStock, sum.OutOfStock)
	}
	if !sum.TotalValue.Equal(decimal.RequireFromString("2069.39")) {
		t.Errorf("total value = %s, want 2069.39", sum.TotalValue)
	}
	if sum.Categories["Shirts"] != 5 {
		t.Errorf("Shirts count = %d, want 5", sum.Categories["Shirts"])
	}

	// Sell out the flannel shirt and recheck.
	if _, err := svc.AdjustStock("5", -6); err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	sum = svc.Summarize()
	if sum.OutOfStock != 1 {
		t.Errorf("out of stock = %d, want 1", sum.OutOfStock)
	}
	if sum.LowStock != 1 {
		t.Errorf("low stock = %d, want 1", sum.LowStock)
	}
	if !sum.TotalValue.Equal(decimal.RequireFromString("1829.45")) {
		t.Errorf("total value = %s, want 1829.45", sum.TotalValue)
	}
}
