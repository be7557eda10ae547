package repository

import (
	"context"
	"errors"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// ErrAccountNotFound is returned when no account matches the username.
var ErrAccountNotFound = errors.New("account not found")

// AccountsRepository is the auth service's relational account store.
type AccountsRepository interface {
	// GetByUsername looks an account up, or returns ErrAccountNotFound.
	GetByUsername(ctx context.Context, username string) (*model.Account, error)

	// Create inserts a new account row.
	Create(ctx context.Context, account *model.Account) error
}
