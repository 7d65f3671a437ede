package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"botforge-backend/internal/features/profile/models"
	"botforge-backend/internal/features/profile/repository"
	redisplatform "botforge-backend/internal/platform/redis"
)

const (
	profileKey   = "botforge:profile"
	lastClaimKey = "botforge:last_login"
)

type profileRepository struct {
	client *redisplatform.Client
}

func NewProfileRepository(client *redisplatform.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
	}
}

func (r *profileRepository) LoadProfile(ctx context.Context) (*models.UserProfile, error) {
	data, err := r.client.Get(ctx, profileKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, profileKey, data, 0).Err()
}

// Маркер хранится как epoch ms текстом, отдельно от профиля
func (r *profileRepository) LoadLastClaim(ctx context.Context) (time.Time, error) {
	raw, err := r.client.Get(ctx, lastClaimKey).Result()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, repository.ErrNotFound
		}
		return time.Time{}, err
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, nil
	}

	return time.UnixMilli(ms), nil
}

func (r *profileRepository) SaveLastClaim(ctx context.Context, at time.Time) error {
	return r.client.Set(ctx, lastClaimKey, strconv.FormatInt(at.UnixMilli(), 10), 0).Err()
}
