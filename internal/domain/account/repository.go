package account

import (
	"context"

	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

// Repository is the account store. Implementations translate their own
// failures into ErrNotFound and ErrEmailTaken.
type Repository interface {
	Create(ctx context.Context, u *models.User) error

	// FindByEmail preloads the associated records returned at login.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)

	List(ctx context.Context) ([]models.User, error)

	// Update saves every column of u in place, nil pointers included.
	Update(ctx context.Context, u *models.User) error

	Delete(ctx context.Context, id string) error
}

// Mailer delivers a plain text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
