package fakestore

import (
	"fmt"
	"strings"
)

// Product mirrors a product resource as served by the store API.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating carries the server-maintained review aggregate. It is never edited
// by the client; locally created products start with a zero Rating.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Draft holds the user-editable attributes of a product, i.e. everything
// except ID and Rating. It is the request body for create and update calls.
type Draft struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Validate reports the first problem with the draft, or nil.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if d.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %v", d.Price)
	}
	return nil
}

// Apply returns a Product carrying the draft's attributes with the given
// identity and rating.
func (d Draft) Apply(id int, rating Rating) Product {
	return Product{
		ID:          id,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
		Rating:      rating,
	}
}

// DraftOf extracts the editable attributes of a product.
func DraftOf(p Product) Draft {
	return Draft{
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
}
