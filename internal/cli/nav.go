package cli

import (
	"context"

	"pantrypal/internal/router"
)

// Open moves the shell to the named page, subject to the guard.
func (a *App) Open(ctx context.Context, name string) error {
	dest, ok := router.Lookup(name)
	if !ok {
		printlnFn("Unknown page:", name)
		return nil
	}
	a.goTo(dest)
	return nil
}

// goTo runs the guard for a single transition and lands on either the
// destination or the redirect it dictates.
func (a *App) goTo(dest router.Route) {
	d := a.guard.Evaluate(dest)
	if !d.Allowed {
		redirect, _ := router.Lookup(d.RedirectTo)
		printlnFn("Redirecting to", redirect.Name)
		a.page = redirect
		return
	}
	a.page = dest
}
