package models

import "time"

type Sweet struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SweetFilter holds the catalog search parameters. Nil price bounds mean
// the bound is absent, not zero.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
