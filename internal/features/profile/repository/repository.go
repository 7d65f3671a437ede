package repository

import (
	"context"
	"errors"
	"time"

	"botforge-backend/internal/features/profile/models"
)

// ErrNotFound is returned when no profile has been persisted yet.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository bridges the in-memory profile to persistent storage.
// The profile and the last-claim marker are persisted independently.
type ProfileRepository interface {
	LoadProfile(ctx context.Context) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile *models.UserProfile) error
	LoadLastClaim(ctx context.Context) (time.Time, error)
	SaveLastClaim(ctx context.Context, at time.Time) error
}
