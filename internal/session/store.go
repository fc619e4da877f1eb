// Package session owns the client's credential and identity.
//
// Store is the single authority both the API transport (token injection)
// and the navigation guard (route decisions) consult. The credential is
// mirrored into durable storage on every change: memory is written first,
// storage immediately after, and both before the mutating call returns.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pantrypal/internal/common"
	"pantrypal/internal/logging"
	"pantrypal/internal/models"
	"pantrypal/internal/repositories/metadata"
)

// tokenKey is the single durable key holding the raw credential. Absence of
// the key means no session.
const tokenKey = "token"

// AuthAPI is the slice of the backend the store needs. Implemented by
// api.AuthClient; tests provide a fake.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, username, password string) error
	CurrentUser(ctx context.Context, token string) (*models.Identity, error)
}

// Store holds the current credential and identity.
type Store struct {
	api  AuthAPI
	meta metadata.Repository
	log  logging.Logger

	mu       sync.RWMutex
	token    string
	identity *models.Identity
}

func NewStore(api AuthAPI, meta metadata.Repository, log logging.Logger) *Store {
	return &Store{api: api, meta: meta, log: log.With("component", "session")}
}

// IsAuthenticated reports whether a credential is installed. It is a pure
// in-memory read; no network round-trip.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the installed credential, or "" when logged out. Read by
// the API transport on every outbound request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentIdentity returns the last-fetched identity, or nil if none.
func (s *Store) CurrentIdentity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// install writes the credential to memory and then mirrors it to storage.
// The memory write is observable to concurrent readers before the storage
// write is issued.
func (s *Store) install(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.meta.Set(ctx, tokenKey, []byte(token))
}

// Login exchanges email+password for a credential, installs and persists
// it, then fetches the identity. The identity fetch is best-effort: the
// exchange already proved the credential valid, so its failure is logged
// and Login still reports success.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.install(ctx, token); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}

	if err := s.fetchIdentity(ctx, token); err != nil {
		s.log.Warn(ctx, "identity fetch after login failed", "error", err)
	}

	return nil
}

// Register creates an account and then logs in with the same credentials.
// A failed creation never attempts the login; a failed follow-up login is
// surfaced as a failure of the registration as a whole.
func (s *Store) Register(ctx context.Context, email, username, password string) error {
	if err := s.api.Register(ctx, email, username, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return s.Login(ctx, email, password)
}

// Logout clears the credential and identity from memory and removes the
// persisted credential. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
	if err := s.meta.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clearing persisted credential: %w", err)
	}
	return nil
}

// Restore reinstates a persisted session at process start.
//
// With a persisted credential present, it is installed and the identity
// fetched. A 401 on that fetch means the credential is stale: the store
// performs a full logout before returning, so the app never starts with a
// half-valid session. A transport-level fetch failure keeps the credential
// installed and leaves the identity empty; it can be fetched later.
func (s *Store) Restore(ctx context.Context) error {
	value, err := s.meta.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("reading persisted credential: %w", err)
	}
	if len(value) == 0 {
		return nil
	}

	token := string(value)
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.fetchIdentity(ctx, token); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.log.Info(ctx, "persisted credential rejected, logging out")
			return s.Logout(ctx)
		}
		s.log.Warn(ctx, "identity fetch on restore failed", "error", err)
		return nil
	}

	s.log.Info(ctx, "session restored")
	return nil
}

func (s *Store) fetchIdentity(ctx context.Context, token string) error {
	id, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	// A logout may have raced the fetch; a stale identity must not outlive
	// the credential that produced it.
	if s.token == token {
		s.identity = id
	}
	s.mu.Unlock()
	return nil
}
