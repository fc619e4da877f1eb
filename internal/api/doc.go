// Package api implements the HTTP client for the pantry backend.
//
// It has three parts:
//   - Transport: the single outbound pipeline every resource call passes
//     through. It attaches the session's bearer token and reacts to 401
//     responses by invoking the session-invalidated hook before the failing
//     call returns to its caller.
//   - AuthClient: the /auth endpoints (login, register, me). These bypass
//     Transport: login precedes any credential, and /auth/me is called with
//     an explicitly supplied token during session restore.
//   - Client: typed wrappers for the ingredient, shopping-list and recipe
//     resource families. Thin path/parameter shaping over Client.do; no
//     state of their own.
package api
