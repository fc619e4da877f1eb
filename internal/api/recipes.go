package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pantrypal/internal/models"
)

func (c *Client) ListRecipes(ctx context.Context, healthyOnly bool) ([]models.Recipe, error) {
	q := url.Values{}
	q.Set("healthy_only", strconv.FormatBool(healthyOnly))
	var out []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRecipe(ctx context.Context, id int) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRecipe(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRecipe(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d", id), nil, nil, nil)
}

// MatchIngredients returns the recipes whose every ingredient is currently
// in stock.
func (c *Client) MatchIngredients(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/match/ingredients", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedSample asks the backend to populate a sample set of recipes.
func (c *Client) SeedSample(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/recipes/seed-sample", nil, nil, nil)
}
