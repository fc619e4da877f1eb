// Package cli provides the interactive PantryPal command-line client.
//
// It wires configuration, local storage, the session store, the
// authenticated API client and a navigation guard into a REPL shell that
// mimics the pages of the web app. Typical flow: restore a persisted
// session, land on the dashboard (or the login page when there is none),
// and execute user commands.
//
// Key features:
//   - Login / Register / Logout
//   - Page navigation gated by the route guard
//   - Inventory, shopping-list and recipe commands
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
