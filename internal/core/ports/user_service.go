package ports

import (
	"context"

	"github.com/accountsvc/user-service/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user.
// An empty Role resolves to domain.DefaultRole.
type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// UpdateUserInput is a partial update: nil fields are left untouched.
// A non-nil Password is re-hashed before storage.
type UpdateUserInput struct {
	Email    *string
	Password *string
	FullName *string
	Role     *domain.Role
	IsActive *bool
}

// UserService is the user directory: CRUD over accounts with hashing and
// role validation applied on the way in.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
