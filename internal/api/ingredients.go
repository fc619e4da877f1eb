package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pantrypal/internal/models"
)

// ListIngredients returns all inventory items, optionally filtered by
// storage location.
func (c *Client) ListIngredients(ctx context.Context, location string) ([]models.Ingredient, error) {
	q := url.Values{}
	if location != "" {
		q.Set("location", location)
	}
	var out []models.Ingredient
	if err := c.do(ctx, http.MethodGet, "/ingredients/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetIngredient(ctx context.Context, id int) (*models.Ingredient, error) {
	var out models.Ingredient
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ingredients/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateIngredient(ctx context.Context, in models.IngredientInput) (*models.Ingredient, error) {
	var out models.Ingredient
	if err := c.do(ctx, http.MethodPost, "/ingredients/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateIngredient(ctx context.Context, id int, in models.IngredientInput) (*models.Ingredient, error) {
	var out models.Ingredient
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/ingredients/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteIngredient(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/ingredients/%d", id), nil, nil, nil)
}

// ExpiringSoon returns items whose expiry date falls within the given
// number of days.
func (c *Client) ExpiringSoon(ctx context.Context, days int) ([]models.Ingredient, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	var out []models.Ingredient
	if err := c.do(ctx, http.MethodGet, "/ingredients/expiring/soon", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
