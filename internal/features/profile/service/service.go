package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"botforge-backend/internal/common/logger"
	"botforge-backend/internal/features/profile/models"
	"botforge-backend/internal/features/profile/repository"
)

// DailyRewardCooldown is the window during which repeated claims are no-ops.
const DailyRewardCooldown = 24 * time.Hour

type profileService struct {
	repo repository.ProfileRepository
	now  func() time.Time

	mu        sync.Mutex
	profile   models.UserProfile
	lastClaim time.Time
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return newProfileService(repo, time.Now)
}

func newProfileService(repo repository.ProfileRepository, now func() time.Time) *profileService {
	return &profileService{
		repo:    repo,
		now:     now,
		profile: models.DefaultProfile(),
	}
}

func (s *profileService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.repo.LoadProfile(ctx)
	switch {
	case err == repository.ErrNotFound:
		s.profile = models.DefaultProfile()
	case err != nil:
		// Повреждённое или недоступное хранилище не фатально:
		// продолжаем с профилем по умолчанию в памяти
		logger.Warn().Err(err).Msg("Failed to load profile, falling back to default")
		s.profile = models.DefaultProfile()
	default:
		if profile.History == nil {
			profile.History = []models.ActivityItem{}
		}
		s.profile = *profile
	}

	lastClaim, err := s.repo.LoadLastClaim(ctx)
	if err != nil && err != repository.ErrNotFound {
		logger.Warn().Err(err).Msg("Failed to load last claim marker, assuming never claimed")
	}
	s.lastClaim = lastClaim
}

func (s *profileService) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *profileService) Stats() models.StatsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.StatsResponse{
		Botcoins:      s.profile.Botcoins,
		AssetsCreated: len(s.profile.History),
		Rank:          100 - s.profile.Level,
	}
}

func (s *profileService) Grant(ctx context.Context, amount int64, detail string, activityType models.ActivityType) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grantLocked(ctx, amount, detail, activityType)
	return s.snapshotLocked()
}

func (s *profileService) ClaimDailyReward(ctx context.Context) (bool, models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.lastClaim.IsZero() && now.Sub(s.lastClaim) < DailyRewardCooldown {
		return false, s.snapshotLocked()
	}

	s.grantLocked(ctx, models.DailyRewardAmount, models.DailyRewardDetail, models.TypeReward)
	s.lastClaim = now
	if err := s.repo.SaveLastClaim(ctx, now); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist last claim marker")
	}

	return true, s.snapshotLocked()
}

// grantLocked applies the delta, records the activity item and persists.
// The recorded coinsChange is the requested amount even when the zero floor
// clamped the actual balance change.
func (s *profileService) grantLocked(ctx context.Context, amount int64, detail string, activityType models.ActivityType) {
	item := models.ActivityItem{
		ID:          uuid.NewString(),
		Type:        activityType,
		Timestamp:   s.now().UnixMilli(),
		Detail:      detail,
		CoinsChange: amount,
	}

	s.profile.Botcoins += amount
	if s.profile.Botcoins < 0 {
		s.profile.Botcoins = 0
	}

	s.profile.History = append([]models.ActivityItem{item}, s.profile.History...)
	if len(s.profile.History) > models.HistoryLimit {
		s.profile.History = s.profile.History[:models.HistoryLimit]
	}

	if amount > 0 {
		s.accrueExperienceLocked(amount * models.ExperiencePerCoin)
	}

	s.persistLocked(ctx)
}

// accrueExperienceLocked performs at most one level transition per call;
// a grant crossing two thresholds leaves the surplus above the new threshold.
func (s *profileService) accrueExperienceLocked(amount int64) {
	threshold := s.profile.LevelThreshold()
	newExp := s.profile.Experience + amount
	if newExp >= threshold {
		s.profile.Level++
		s.profile.Experience = newExp - threshold
		s.profile.Botcoins += models.LevelUpBonus
		return
	}
	s.profile.Experience = newExp
}

func (s *profileService) persistLocked(ctx context.Context) {
	if err := s.repo.SaveProfile(ctx, &s.profile); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist profile, state kept in memory")
	}
}

func (s *profileService) snapshotLocked() models.UserProfile {
	snapshot := s.profile
	snapshot.History = make([]models.ActivityItem, len(s.profile.History))
	copy(snapshot.History, s.profile.History)
	return snapshot
}
