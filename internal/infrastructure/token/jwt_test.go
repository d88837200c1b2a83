package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("secret", 0)

	issued, err := codec.Issue(ports.TokenClaims{AccountID: "abc123", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := codec.Validate(issued)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.AccountID != "abc123" || claims.Role != domain.RoleStudent {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTCodec_NoExpiryByDefault(t *testing.T) {
	codec := NewJWTCodec("secret", 0)

	issued, err := codec.Issue(ports.TokenClaims{AccountID: "abc", Role: domain.RoleTeacher})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	mc := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(issued, mc, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := mc["exp"]; ok {
		t.Fatalf("expected no exp claim with zero TTL")
	}
}

func TestJWTCodec_Tampering(t *testing.T) {
	codec := NewJWTCodec("secret", 0)

	issued, err := codec.Issue(ports.TokenClaims{AccountID: "abc", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one character anywhere in the payload segment.
	parts := strings.Split(issued, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := codec.Validate(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestJWTCodec_ForeignSecret(t *testing.T) {
	issuer := NewJWTCodec("secret-a", 0)
	verifier := NewJWTCodec("secret-b", 0)

	issued, err := issuer.Issue(ports.TokenClaims{AccountID: "abc", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Validate(issued); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestJWTCodec_Malformed(t *testing.T) {
	codec := NewJWTCodec("secret", 0)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestJWTCodec_MissingClaims(t *testing.T) {
	// A structurally valid token signed with the right secret but without the
	// identity claims is still rejected.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"}).
		SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	codec := NewJWTCodec("secret", 0)
	if _, err := codec.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTCodec_RejectsOtherSigningMethods(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id":   "abc",
		"role": "student",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	codec := NewJWTCodec("secret", 0)
	if _, err := codec.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestJWTCodec_Expiry(t *testing.T) {
	codec := NewJWTCodec("secret", time.Nanosecond)

	issued, err := codec.Issue(ports.TokenClaims{AccountID: "abc", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := codec.Validate(issued); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
