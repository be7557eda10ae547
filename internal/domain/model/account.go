package model

import "time"

// Account is a row in the auth service's accounts table. PasswordHash is
// a bcrypt hash; plaintext passwords are never stored.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is the body of POST /register and POST /login.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
