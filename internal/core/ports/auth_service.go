package ports

import (
	"context"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account. Every field is
// required.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// AuthService defines the account use-cases: registration, credential
// verification with token issuance, and token-subject profile resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token on success. Unknown email and wrong
	// password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile resolves the account behind a validated token subject.
	Profile(ctx context.Context, email string) (*domain.User, error)
}
