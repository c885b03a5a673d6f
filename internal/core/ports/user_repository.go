package ports

import (
	"context"

	"github.com/accountsvc/user-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// Implementations must enforce email uniqueness atomically at the store
// boundary: concurrent creates with the same email yield exactly one
// success and one domain.ErrEmailExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all users in ascending id order.
	List(ctx context.Context) ([]domain.User, error)
	// Update persists the full row identified by user.ID. Fails with
	// domain.ErrUserNotFound if the row is gone and domain.ErrEmailExists
	// if the new email collides with another row.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the row. Fails with domain.ErrUserNotFound when the
	// id is absent, so repeated deletes are observably idempotent failures.
	Delete(ctx context.Context, id int64) error
}
