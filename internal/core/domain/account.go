package domain

import (
	"errors"
	"sync"
	"time"
)

// Role classifies what an account is allowed to do. The set of valid roles is
// open for extension (RegisterRole) but every signup is validated against it,
// so a typo can never mint an unknown role.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

var (
	roleMu     sync.RWMutex
	knownRoles = map[Role]struct{}{
		RoleTeacher: {},
		RoleStudent: {},
		RoleAdmin:   {},
	}
)

// Valid reports whether r is a registered role.
func (r Role) Valid() bool {
	roleMu.RLock()
	defer roleMu.RUnlock()
	_, ok := knownRoles[r]
	return ok
}

// RegisterRole adds a role to the known set. Intended for deployments that
// extend the base teacher/student/admin taxonomy at startup.
func RegisterRole(r Role) {
	if r == "" {
		return
	}
	roleMu.Lock()
	defer roleMu.Unlock()
	knownRoles[r] = struct{}{}
}

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingFields      = errors.New("username, password and role are required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
)

// Account models a registered principal. The username is the lookup key and
// is immutable after creation; PasswordDigest is the bcrypt digest, never the
// plaintext, and is excluded from every JSON rendering.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordDigest string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
