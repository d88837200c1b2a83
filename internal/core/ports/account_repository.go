package ports

import (
	"context"

	"github.com/campusboard/result-api/internal/core/domain"
)

// AccountRepository is the persistence boundary for accounts. The store's
// unique index on username is the authority for duplicate detection: Create
// returns domain.ErrUserExists when the key is already taken, regardless of
// any pre-check the caller performed.
type AccountRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	// Any other error means the store itself failed and must not be
	// conflated with a missing account.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
