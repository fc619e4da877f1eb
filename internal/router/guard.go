package router

// SessionState is the slice of the session store the guard consults.
// Implemented by session.Store.
type SessionState interface {
	IsAuthenticated() bool
}

// Decision is the outcome of evaluating a single transition. When Allowed
// is false, RedirectTo names the path the shell must land on instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard enforces route access policy. It is stateless across transitions:
// every Evaluate re-reads the session synchronously and never touches the
// network.
type Guard struct {
	session SessionState
}

func NewGuard(session SessionState) *Guard {
	return &Guard{session: session}
}

// Evaluate decides a transition to dest:
//
//  1. dest requires auth and there is no session → redirect to login.
//  2. dest is the login or register page and there is a session → redirect
//     to the dashboard (no re-entering the login flow while logged in).
//  3. otherwise the transition passes through unchanged.
func (g *Guard) Evaluate(dest Route) Decision {
	authenticated := g.session.IsAuthenticated()

	if dest.RequiresAuth && !authenticated {
		return Decision{RedirectTo: LoginPath}
	}
	if (dest.Path == LoginPath || dest.Path == RegisterPath) && authenticated {
		return Decision{RedirectTo: DashboardPath}
	}
	return Decision{Allowed: true}
}
