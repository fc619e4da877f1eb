// Package router holds the static page table and the navigation guard that
// enforces each page's access policy.
package router

// Route describes one page of the shell. RequiresAuth is declared
// explicitly for every route; there is no implicit default.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Well-known paths the guard redirects between.
const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardPath = "/"
)

// Routes is the full page table. Static configuration, never mutated.
var Routes = []Route{
	{Path: LoginPath, Name: "login", RequiresAuth: false},
	{Path: RegisterPath, Name: "register", RequiresAuth: false},
	{Path: DashboardPath, Name: "dashboard", RequiresAuth: true},
	{Path: "/ingredients", Name: "ingredients", RequiresAuth: true},
	{Path: "/shopping", Name: "shopping", RequiresAuth: true},
	{Path: "/recipes", Name: "recipes", RequiresAuth: true},
}

// Lookup finds a route by name or path.
func Lookup(nameOrPath string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == nameOrPath || r.Path == nameOrPath {
			return r, true
		}
	}
	return Route{}, false
}
