package catalog

import "github.com/shopspring/decimal"

// DemoProducts returns the starter catalog the register ships with.
func DemoProducts() []*Product {
	return []*Product{
		{ID: "1", Name: "Cotton T-Shirt", Barcode: "1234567890123", Price: decimal.RequireFromString("25.99"), Category: "Shirts", Size: "M", Color: "Blue", Stock: 15, Image: DefaultImage},
		{ID: "2", Name: "Polo Shirt", Barcode: "1234567890124", Price: decimal.RequireFromString("35.99"), Category: "Shirts", Size: "L", Color: "White", Stock: 8, Image: DefaultImage},
		{ID: "3", Name: "Dress Shirt", Barcode: "1234567890125", Price: decimal.RequireFromString("45.99"), Category: "Shirts", Size: "M", Color: "Black", Stock: 12, Image: DefaultImage},
		{ID: "4", Name: "Casual Shirt", Barcode: "1234567890126", Price: decimal.RequireFromString("29.99"), Category: "Shirts", Size: "S", Color: "Red", Stock: 20, Image: DefaultImage},
		{ID: "5", Name: "Flannel Shirt", Barcode: "1234567890127", Price: decimal.RequireFromString("39.99"), Category: "Shirts", Size: "L", Color: "Plaid", Stock: 6, Image: DefaultImage},
	}
}

// Seed loads the demo products into storage.
func Seed(storage Storage) error {
	for _, p := range DemoProducts() {
		if err := storage.Insert(p); err != nil {
			return err
		}
	}
	return nil
}
