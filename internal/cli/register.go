package cli

import (
	"context"
	"fmt"
	"os"
)

// Register creates an account and, on success, is immediately logged in by
// the session store.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, email, username, password); err != nil {
		fmt.Printf("Registration unsuccessful: %s\n", err.Error())
		return err
	}

	printlnFn("Registration successful")
	a.goTo(mustRoute("dashboard"))
	return nil
}
