package models

import "time"

// ShoppingItem is a single line item on a shopping list.
type ShoppingItem struct {
	ID             int     `json:"id"`
	ShoppingListID int     `json:"shopping_list_id"`
	ItemName       string  `json:"item_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	IsPurchased    bool    `json:"is_purchased"`
}

// ShoppingItemInput is the payload for adding a line item to a list.
type ShoppingItemInput struct {
	ItemName    string  `json:"item_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	IsPurchased bool    `json:"is_purchased"`
}

// ShoppingList is a named list with its nested items.
type ShoppingList struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []ShoppingItem `json:"items"`
}

// ShoppingListInput is the payload for creating a shopping list.
type ShoppingListInput struct {
	Name string `json:"name"`
}
