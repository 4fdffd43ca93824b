// Package auth authenticates workers against the whitelist and the
// manager against the configured shared secret, and scopes what an
// authenticated session may see or change.
//
// The manager credential is a single plaintext secret compared on each
// action. It is a placeholder, not production authentication: there
// are no per-user accounts, no hashing and no attempt limiting.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shiftclock/shiftclock/internal/model"
)

// ErrAccessDenied rejects a bad credential or a name missing from the
// whitelist.
var ErrAccessDenied = errors.New("access denied")

// Role is what a session is allowed to act as.
type Role string

const (
	RoleWorker  Role = "worker"
	RoleManager Role = "manager"
)

// Session identifies an authenticated caller. It is constructed at
// login, passed explicitly to every scoped operation, and discarded
// when the action completes; nothing reads ambient session state.
type Session struct {
	ID     uuid.UUID
	Role   Role
	Worker string // trimmed identity; empty for managers
}

// AuthenticateWorker succeeds iff the normalized name appears on the
// whitelist.
func AuthenticateWorker(name string, whitelist []string) (Session, error) {
	key := model.NormalizeName(name)
	if key == "" {
		return Session{}, fmt.Errorf("empty worker name: %w", ErrAccessDenied)
	}
	for _, w := range whitelist {
		if model.NormalizeName(w) == key {
			return Session{ID: uuid.New(), Role: RoleWorker, Worker: strings.TrimSpace(name)}, nil
		}
	}
	return Session{}, fmt.Errorf("%q is not an authorized worker: %w", strings.TrimSpace(name), ErrAccessDenied)
}

// AuthenticateManager succeeds iff the password equals the configured
// secret.
func AuthenticateManager(password, secret string) (Session, error) {
	if secret == "" || password != secret {
		return Session{}, fmt.Errorf("wrong manager password: %w", ErrAccessDenied)
	}
	return Session{ID: uuid.New(), Role: RoleManager}, nil
}

// CanView reports whether the session may see the given shift. Workers
// see only their own rows; managers see everything.
func (s Session) CanView(sh model.Shift) bool {
	if s.Role == RoleManager {
		return true
	}
	return model.NormalizeName(sh.Worker) == model.NormalizeName(s.Worker)
}

// CanMutate reports whether the session may change rows owned by the
// named worker.
func (s Session) CanMutate(worker string) bool {
	if s.Role == RoleManager {
		return true
	}
	return model.NormalizeName(worker) == model.NormalizeName(s.Worker)
}
