package service

import (
	"context"

	"botforge-backend/internal/features/profile/models"
)

// ProfileService is the single source of truth for the user profile and the
// daily-reward marker. All mutation goes through it.
type ProfileService interface {
	// Load reads persisted state. Absent or malformed state falls back to
	// the default profile; storage errors are non-fatal.
	Load(ctx context.Context)

	// Profile returns a snapshot of the current profile.
	Profile() models.UserProfile

	// Stats returns the aggregate numbers shown on the settings screen.
	Stats() models.StatsResponse

	// Grant applies a botcoin delta, records one activity item and, for
	// positive deltas, accrues experience. Returns the updated snapshot.
	Grant(ctx context.Context, amount int64, detail string, activityType models.ActivityType) models.UserProfile

	// ClaimDailyReward grants the daily bonus when at least 24h elapsed
	// since the previous successful claim. Returns whether it was granted.
	ClaimDailyReward(ctx context.Context) (bool, models.UserProfile)
}
