package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

var (
	// ErrMissingCredentials means username or password was empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials means the username/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const sessionTokenTTL = 24 * time.Hour

// AccountsService provides register/login business logic for the auth
// service. Passwords are bcrypt-hashed before storage and a signed session
// token is issued on successful login.
type AccountsService interface {
	// Register creates a new account.
	Register(ctx context.Context, username, password string) error

	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)
}

type accountsServiceImpl struct {
	accountsRepo repository.AccountsRepository
	jwtSecret    []byte
}

// NewAccountsService creates a new AccountsService instance.
func NewAccountsService(accountsRepo repository.AccountsRepository, jwtSecret string) AccountsService {
	return &accountsServiceImpl{
		accountsRepo: accountsRepo,
		jwtSecret:    []byte(jwtSecret),
	}
}

// Register checks for duplicates, hashes the password and stores the
// account.
func (s *accountsServiceImpl) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	_, err := s.accountsRepo.GetByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accountsRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Login compares the password against the stored hash. An unknown
// username and a wrong password produce the same error so the response
// never reveals which one was off.
func (s *accountsServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	account, err := s.accountsRepo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issueSessionToken(account.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

// issueSessionToken signs an HS256 token carrying the username as subject.
func (s *accountsServiceImpl) issueSessionToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
