// Package session holds the single source of truth for "who is logged in".
//
// The identity lives in memory and is mirrored to the local metadata
// repository under a fixed key, so it survives client restarts. Storage
// failures are logged and swallowed: the store fails open to "logged out"
// and never raises storage problems to callers.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
	"github.com/taskflowhq/taskflow-cli/internal/client/repositories/metadata"
	"github.com/taskflowhq/taskflow-cli/internal/common"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

type Store struct {
	mu       sync.RWMutex
	identity *models.Identity
	repo     metadata.Repository
	log      logging.Logger
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "session")}
}

// Load hydrates the in-memory identity from durable storage. A missing
// entry means logged out; a corrupt entry is discarded and removed.
func (s *Store) Load(ctx context.Context) {
	data, err := s.repo.Get(ctx, common.IdentityStorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored identity", "error", err)
		return
	}
	if data == nil {
		return
	}

	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		s.log.Warn(ctx, "discarding corrupt stored identity", "error", err)
		if err := s.repo.Delete(ctx, common.IdentityStorageKey); err != nil {
			s.log.Warn(ctx, "failed to remove corrupt identity entry", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.identity = &id
	s.mu.Unlock()
}

// Set replaces the current identity. A non-nil identity is serialized and
// written under the fixed storage key; nil deletes the key.
func (s *Store) Set(ctx context.Context, id *models.Identity) {
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()

	if id == nil {
		if err := s.repo.Delete(ctx, common.IdentityStorageKey); err != nil {
			s.log.Warn(ctx, "failed to delete stored identity", "error", err)
		}
		return
	}

	data, err := json.Marshal(id)
	if err != nil {
		s.log.Warn(ctx, "failed to serialize identity", "error", err)
		return
	}
	if err := s.repo.Set(ctx, common.IdentityStorageKey, data); err != nil {
		s.log.Warn(ctx, "failed to persist identity", "error", err)
	}
}

// Logout clears the identity and its durable entry. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.Set(ctx, nil)
}

// Identity returns a copy of the current identity, or nil when logged out.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// TokenExpiry extracts the expiry claim from the session token without
// verifying the signature (the server remains the authority; this is
// display-only). Returns false when there is no token or no usable claim.
func (s *Store) TokenExpiry() (time.Time, bool) {
	id := s.Identity()
	if id == nil || id.Token == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(id.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
