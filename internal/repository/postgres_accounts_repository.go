package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
	"github.com/DebuggingNinjas/GeoAssist/internal/infrastructure/database"
)

// PostgresAccountsRepository is the accounts table backing the auth
// service.
type PostgresAccountsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresAccountsRepository(client *database.PostgreSQLClient) repository.AccountsRepository {
	return &PostgresAccountsRepository{
		client: client,
	}
}

// GetByUsername fetches one account row.
func (r *PostgresAccountsRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `SELECT id, username, password_hash, created_at FROM accounts WHERE username = $1`

	var account model.Account
	err := r.client.DB.QueryRowContext(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &account, nil
}

// Create inserts a new account row and fills in the generated ID.
func (r *PostgresAccountsRepository) Create(ctx context.Context, account *model.Account) error {
	query := `INSERT INTO accounts (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`

	err := r.client.DB.QueryRowContext(ctx, query, account.Username, account.PasswordHash, account.CreatedAt).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}
