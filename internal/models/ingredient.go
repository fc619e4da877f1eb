package models

import "time"

// Ingredient is a stored inventory item.
//
// ExpiryDate is a plain "YYYY-MM-DD" date on the wire, kept as a string.
type Ingredient struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate string    `json:"expiry_date,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IngredientInput is the payload for creating or updating an ingredient.
type IngredientInput struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Location   string  `json:"location"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}
