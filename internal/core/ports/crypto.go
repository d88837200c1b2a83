package ports

import "github.com/campusboard/result-api/internal/core/domain"

// PasswordHasher hides the digest algorithm from the service layer.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed or
	// corrupt digest is a non-match, never a panic.
	Verify(plaintext, digest string) bool
}

// TokenClaims is the identity assertion baked into a session token: just
// enough for downstream authorization decisions, nothing more.
type TokenClaims struct {
	AccountID string
	Role      domain.Role
}

// TokenCodec issues and validates self-contained signed tokens. Validation
// needs no server-side session state; the signature alone proves authenticity.
type TokenCodec interface {
	Issue(claims TokenClaims) (string, error)
	// Validate returns domain.ErrInvalidToken for a bad signature, malformed
	// structure, or expired token.
	Validate(token string) (*TokenClaims, error)
}
