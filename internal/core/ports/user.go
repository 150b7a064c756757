package ports

import (
	"context"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService interface {
	// Login verifies the credentials and returns the user with a signed
	// bearer token. Unknown email and wrong password are indistinguishable
	// to the caller: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}
