package cli

import (
	"context"
	"fmt"
)

// Recipes lists recipes; "recipes healthy" restricts to the healthy subset.
func (a *App) Recipes(ctx context.Context, args []string) error {
	healthyOnly := len(args) > 0 && args[0] == "healthy"

	recipes, err := a.client.ListRecipes(ctx, healthyOnly)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	if len(recipes) == 0 {
		printlnFn("No recipes")
		return nil
	}
	for _, r := range recipes {
		line := fmt.Sprintf("[%d] %s (serves %d", r.ID, r.Name, r.Servings)
		if r.PrepTime > 0 {
			line += fmt.Sprintf(", %d min", r.PrepTime)
		}
		if r.Calories > 0 {
			line += fmt.Sprintf(", %d kcal", r.Calories)
		}
		line += ")"
		printlnFn(line)
	}
	return nil
}

// Match shows the recipes fully covered by the current inventory.
func (a *App) Match(ctx context.Context) error {
	recipes, err := a.client.MatchIngredients(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	if len(recipes) == 0 {
		printlnFn("No recipes match your current inventory")
		return nil
	}
	printlnFn("You can cook:")
	for _, r := range recipes {
		fmt.Printf("[%d] %s\n", r.ID, r.Name)
	}
	return nil
}

// Seed asks the backend to load its sample recipes.
func (a *App) Seed(ctx context.Context) error {
	if err := a.client.SeedSample(ctx); err != nil {
		fmt.Printf("error: %v\n", err)
		return err
	}
	printlnFn("Sample recipes loaded")
	return nil
}
