package catalog

import "github.com/shopspring/decimal"

// Product is a sellable item in the store catalog.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Barcode  string          `json:"barcode"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Stock    int             `json:"stock"`
	Image    string          `json:"image"`
}

// Draft carries the raw form values for creating or editing a product.
// Price and stock stay strings until validation parses them, the same
// way they arrive from the register's input fields. Empty fields on an
// edit mean "leave unchanged".
type Draft struct {
	Name     string `json:"name"`
	Barcode  string `json:"barcode"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Stock    string `json:"stock"`
	Image    string `json:"image"`
}
