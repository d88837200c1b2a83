package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusboard/result-api/internal/core/domain"
	"github.com/campusboard/result-api/internal/core/ports"
)

// AuthService implements signup and login on top of the account repository,
// password hasher and token codec ports.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, codec ports.TokenCodec) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec}
}

// Signup registers a new account. The repository's unique index is the
// authority for duplicates; the lookup here is only an early exit, so a
// concurrent signup that slips past it still surfaces as ErrUserExists.
func (s *AuthService) Signup(ctx context.Context, username, password string, role domain.Role) (*domain.Account, error) {
	if username == "" || password == "" || role == "" {
		return nil, domain.ErrMissingFields
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup: lookup %q: %w", username, err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	account := &domain.Account{
		Username:       username,
		PasswordDigest: digest,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("signup: create %q: %w", username, err)
	}
	return created, nil
}

// Login authenticates a username/password pair and issues a signed token.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials so
// the response never reveals which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: lookup %q: %w", username, err)
	}

	if !s.hasher.Verify(password, account.PasswordDigest) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(ports.TokenClaims{AccountID: account.ID, Role: account.Role})
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}
	return token, nil
}
