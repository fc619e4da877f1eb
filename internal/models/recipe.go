package models

import "time"

// Recipe as stored by the backend.
//
// Ingredients is a JSON-encoded string list (a backend storage quirk the
// wire contract preserves), e.g. `["chicken","lettuce"]`.
type Recipe struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	PrepTime     int       `json:"prep_time,omitempty"`
	Servings     int       `json:"servings"`
	Calories     int       `json:"calories,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecipeInput is the payload for creating a recipe.
type RecipeInput struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepTime     int    `json:"prep_time,omitempty"`
	Servings     int    `json:"servings"`
	Calories     int    `json:"calories,omitempty"`
	IsHealthy    bool   `json:"is_healthy"`
}
