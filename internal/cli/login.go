package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Printf("Login unsuccessful: %s\n", err.Error())
		return err
	}

	printlnFn("Login successful")
	a.goTo(mustRoute("dashboard"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Printf("Logout failed: %s\n", err.Error())
		return err
	}
	printlnFn("Logged out")
	a.goTo(mustRoute("login"))
	return nil
}

// WhoAmI prints the identity behind the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	id := a.session.CurrentIdentity()
	if id == nil {
		printlnFn("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (id %d)\n", id.Username, id.Email, id.ID)
	return nil
}
