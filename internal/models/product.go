package models

import "github.com/shopspring/decimal"

// ProductFields lists the stored product fields in schema order
var ProductFields = []string{"name", "description", "price", "category", "brand", "image_url"}

// Product is a catalog entry. Identity is assigned by the vector database.
type Product struct {
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"`
	Brand       string          `json:"brand" db:"brand"`
	ImageURL    string          `json:"image_url" db:"image_url"`
}

// Fields returns the product as a plain field mapping
func (p Product) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"category":    p.Category,
		"brand":       p.Brand,
		"image_url":   p.ImageURL,
	}
}

// ProductsPage is the view model for the results page
type ProductsPage struct {
	Title    string
	Query    string
	Products []Product
}

// HomePage is the view model for the search form
type HomePage struct {
	Title string
}
