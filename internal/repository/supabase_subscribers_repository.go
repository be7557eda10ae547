package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DebuggingNinjas/GeoAssist/internal/database"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

// SupabaseSubscribersRepository stores newsletter signups in the Supabase
// "subscribers" table.
type SupabaseSubscribersRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseSubscribersRepository(client *database.SupabaseClient) repository.SubscribersRepository {
	return &SupabaseSubscribersRepository{
		client: client,
	}
}

type subscriberRow struct {
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribed_at"`
}

// Subscribe inserts the email, returning ErrAlreadySubscribed when the
// address is already on the list.
func (r *SupabaseSubscribersRepository) Subscribe(ctx context.Context, email string) error {
	data, _, err := r.client.GetClient().From("subscribers").Select("email", "exact", false).Eq("email", email).Execute()
	if err != nil {
		return fmt.Errorf("failed to check subscriber: %w", err)
	}

	var existing []subscriberRow
	if err := json.Unmarshal(data, &existing); err != nil {
		return fmt.Errorf("failed to unmarshal subscriber rows: %w", err)
	}
	if len(existing) > 0 {
		return repository.ErrAlreadySubscribed
	}

	row := subscriberRow{
		Email:        email,
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal subscriber row: %w", err)
	}
	if _, _, err := r.client.GetClient().From("subscribers").Insert(string(payload), false, "", "", "").Execute(); err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return nil
}
