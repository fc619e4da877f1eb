package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource exposes the currently installed credential. Implemented by
// session.Store. An empty string means no session.
type TokenSource interface {
	Token() string
}

// Transport is the outbound pipeline every resource call passes through.
//
// Before dispatch it attaches the current bearer token (if one is
// installed) and a request id. After dispatch, a 401 response received
// while a token was attached means the credential is invalid or expired:
// OnAuthRejected runs to completion before RoundTrip returns, so any code
// reacting to the failed call already observes a logged-out session.
//
// Network-level failures pass through untouched; only an explicit 401
// invalidates the session.
type Transport struct {
	Base           http.RoundTripper
	Tokens         TokenSource
	OnAuthRejected func(ctx context.Context)
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	var token string
	if t.Tokens != nil {
		token = t.Tokens.Token()
	}
	if token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	clone.Header.Set("X-Request-Id", uuid.NewString())

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && t.OnAuthRejected != nil {
		t.OnAuthRejected(req.Context())
	}

	return resp, nil
}
