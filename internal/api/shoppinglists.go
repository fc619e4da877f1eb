package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pantrypal/internal/models"
)

func (c *Client) ListShoppingLists(ctx context.Context) ([]models.ShoppingList, error) {
	var out []models.ShoppingList
	if err := c.do(ctx, http.MethodGet, "/shopping-lists/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetShoppingList(ctx context.Context, id int) (*models.ShoppingList, error) {
	var out models.ShoppingList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shopping-lists/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateShoppingList(ctx context.Context, in models.ShoppingListInput) (*models.ShoppingList, error) {
	var out models.ShoppingList
	if err := c.do(ctx, http.MethodPost, "/shopping-lists/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteShoppingList(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-lists/%d", id), nil, nil, nil)
}

// AddShoppingItem appends a line item to the given list.
func (c *Client) AddShoppingItem(ctx context.Context, listID int, in models.ShoppingItemInput) (*models.ShoppingItem, error) {
	var out models.ShoppingItem
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/shopping-lists/%d/items", listID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShoppingItem flips the purchased flag of a line item. The backend
// takes the flag as a query parameter, not a body.
func (c *Client) UpdateShoppingItem(ctx context.Context, itemID int, isPurchased bool) (*models.ShoppingItem, error) {
	q := url.Values{}
	q.Set("is_purchased", strconv.FormatBool(isPurchased))
	var out models.ShoppingItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/shopping-lists/items/%d", itemID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteShoppingItem(ctx context.Context, itemID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-lists/items/%d", itemID), nil, nil, nil)
}
