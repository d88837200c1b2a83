package ports

import (
	"context"

	"github.com/campusboard/result-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string, role domain.Role) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, error)
}
