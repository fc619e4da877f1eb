package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"pantrypal/internal/models"
)

// Ingredients lists the inventory, optionally filtered by location
// ("ingredients fridge").
func (a *App) Ingredients(ctx context.Context, args []string) error {
	location := ""
	if len(args) > 0 {
		location = args[0]
	}

	items, err := a.client.ListIngredients(ctx, location)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}

	if len(items) == 0 {
		printlnFn("No ingredients")
		return nil
	}
	for _, it := range items {
		line := fmt.Sprintf("[%d] %s — %.1f %s (%s, %s)", it.ID, it.Name, it.Quantity, it.Unit, it.Category, it.Location)
		if it.ExpiryDate != "" {
			line += " expires " + it.ExpiryDate
		}
		printlnFn(line)
	}
	return nil
}

// AddIngredient interactively creates an inventory item.
func (a *App) AddIngredient(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location (fridge/freezer/pantry)", os.Stdout)
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
	expiry, err := GetSimpleText(a.reader, "Expiry date YYYY-MM-DD (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	in := models.IngredientInput{
		Name:       name,
		Category:   category,
		Location:   location,
		Quantity:   quantity,
		Unit:       unit,
		ExpiryDate: expiry,
	}
	created, err := a.client.CreateIngredient(ctx, in)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	fmt.Printf("Added ingredient %d\n", created.ID)
	return nil
}

// DeleteIngredient removes an item by id ("delingredient 5").
func (a *App) DeleteIngredient(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: delingredient <id>")
	if !ok {
		return nil
	}
	if err := a.client.DeleteIngredient(ctx, id); err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	printlnFn("Deleted")
	return nil
}

// Expiring lists items expiring within N days (default 7).
func (a *App) Expiring(ctx context.Context, args []string) error {
	days := 7
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: expiring [days]")
			return nil
		}
		days = d
	}

	items, err := a.client.ExpiringSoon(ctx, days)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	if len(items) == 0 {
		fmt.Printf("Nothing expires within %d days\n", days)
		return nil
	}
	for _, it := range items {
		fmt.Printf("[%d] %s expires %s\n", it.ID, it.Name, it.ExpiryDate)
	}
	return nil
}

func parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return id, true
}
