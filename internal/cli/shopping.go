package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pantrypal/internal/models"
)

// Lists shows all shopping lists with their items.
func (a *App) Lists(ctx context.Context) error {
	lists, err := a.client.ListShoppingLists(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	if len(lists) == 0 {
		printlnFn("No shopping lists")
		return nil
	}
	for _, l := range lists {
		fmt.Printf("[%d] %s (%d items)\n", l.ID, l.Name, len(l.Items))
		for _, it := range l.Items {
			mark := " "
			if it.IsPurchased {
				mark = "x"
			}
			fmt.Printf("  [%s] (%d) %s — %.1f %s\n", mark, it.ID, it.ItemName, it.Quantity, it.Unit)
		}
	}
	return nil
}

// NewList creates a shopping list ("newlist Weekly groceries").
func (a *App) NewList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: newlist <name>")
		return nil
	}
	created, err := a.client.CreateShoppingList(ctx, models.ShoppingListInput{Name: strings.Join(args, " ")})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	fmt.Printf("Created list %d\n", created.ID)
	return nil
}

// DeleteList removes a list by id.
func (a *App) DeleteList(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: dellist <id>")
	if !ok {
		return nil
	}
	if err := a.client.DeleteShoppingList(ctx, id); err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	printlnFn("Deleted")
	return nil
}

// AddItem interactively appends a line item to a list ("additem 2").
func (a *App) AddItem(ctx context.Context, args []string) error {
	listID, ok := parseID(args, "Usage: additem <list-id>")
	if !ok {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Item name", os.Stdout)
	if err != nil {
		return err
	}
	quantityStr, err := GetSimpleText(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := strconv.ParseFloat(quantityStr, 64)
	if err != nil {
		printlnFn("Quantity must be a number")
		return err
	}
	unit, err := GetSimpleText(a.reader, "Unit", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.client.AddShoppingItem(ctx, listID, models.ShoppingItemInput{
		ItemName: name,
		Quantity: quantity,
		Unit:     unit,
	})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	fmt.Printf("Added item %d\n", item.ID)
	return nil
}

// MarkItem flips an item's purchased flag ("buy 9" / "unbuy 9").
func (a *App) MarkItem(ctx context.Context, args []string, purchased bool) error {
	id, ok := parseID(args, "Usage: buy|unbuy <item-id>")
	if !ok {
		return nil
	}
	if _, err := a.client.UpdateShoppingItem(ctx, id, purchased); err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	printlnFn("Updated")
	return nil
}

// DeleteItem removes a line item by id.
func (a *App) DeleteItem(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: delitem <item-id>")
	if !ok {
		return nil
	}
	if err := a.client.DeleteShoppingItem(ctx, id); err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	printlnFn("Deleted")
	return nil
}
