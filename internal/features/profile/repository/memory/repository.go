package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"botforge-backend/internal/features/profile/models"
	"botforge-backend/internal/features/profile/repository"
)

// profileRepository keeps state in process memory. Used when Redis is
// unavailable at startup and as the storage fake in tests.
type profileRepository struct {
	mu        sync.Mutex
	profile   []byte
	lastClaim time.Time
	hasClaim  bool
}

func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) LoadProfile(ctx context.Context) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil {
		return nil, repository.ErrNotFound
	}

	var profile models.UserProfile
	if err := json.Unmarshal(r.profile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = data
	return nil
}

func (r *profileRepository) LoadLastClaim(ctx context.Context) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasClaim {
		return time.Time{}, repository.ErrNotFound
	}
	return r.lastClaim, nil
}

func (r *profileRepository) SaveLastClaim(ctx context.Context, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastClaim = at
	r.hasClaim = true
	return nil
}
