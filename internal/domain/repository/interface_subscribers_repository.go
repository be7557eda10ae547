package repository

import (
	"context"
	"errors"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// SubscribersRepository stores newsletter signups.
type SubscribersRepository interface {
	Subscribe(ctx context.Context, email string) error
}
