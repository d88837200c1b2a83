// Package token implements the token codec port with HS256 JWTs.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

// JWTCodec signs and validates session tokens with a process-wide symmetric
// secret injected at construction. A zero ttl issues tokens without an exp
// claim, matching the long-lived sessions the service historically handed out;
// a positive ttl turns on expiry and expired tokens validate as invalid.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

// Issue serializes the claims and signs them. The token is self-contained:
// validating it later needs only the secret, no session table.
func (c *JWTCodec) Issue(claims ports.TokenClaims) (string, error) {
	mc := jwt.MapClaims{
		"id":   claims.AccountID,
		"role": string(claims.Role),
	}
	if c.ttl > 0 {
		mc["exp"] = time.Now().Add(c.ttl).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and structure of a presented token. Every
// failure mode collapses to domain.ErrInvalidToken; the underlying cause
// carries no signature or secret material, so it is safe to log upstream.
func (c *JWTCodec) Validate(token string) (*ports.TokenClaims, error) {
	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, _ := mc["id"].(string)
	role, _ := mc["role"].(string)
	if id == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{AccountID: id, Role: domain.Role(role)}, nil
}
