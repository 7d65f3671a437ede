package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botforge-backend/internal/features/profile/models"
	"botforge-backend/internal/features/profile/repository"
	"botforge-backend/internal/features/profile/repository/memory"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*profileService, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	svc := newProfileService(memory.NewProfileRepository(), clock.Now)
	svc.Load(context.Background())
	return svc, clock
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	profile := svc.Profile()
	assert.Equal(t, models.DefaultProfile(), profile)
	assert.Equal(t, "AgentForge", profile.Username)
	assert.Equal(t, int64(9999999), profile.Botcoins)
	assert.Equal(t, 99, profile.Level)
	assert.Empty(t, profile.History)
}

func TestGrantBotcoinsNeverNegative(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Botcoins = 100

	profile := svc.Grant(context.Background(), -500, "penalty", models.TypeChat)

	assert.Equal(t, int64(0), profile.Botcoins)
	// Записанная дельта остаётся запрошенной, даже когда баланс упёрся в ноль
	require.Len(t, profile.History, 1)
	assert.Equal(t, int64(-500), profile.History[0].CoinsChange)
}

func TestGrantAccruesExperience(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Level = 1
	svc.profile.Experience = 0
	svc.profile.Botcoins = 0

	profile := svc.Grant(context.Background(), 10, "chat", models.TypeChat)

	assert.Equal(t, int64(50), profile.Experience)
	assert.Equal(t, int64(10), profile.Botcoins)
	assert.Equal(t, 1, profile.Level)
}

func TestNegativeGrantDoesNotAccrueExperience(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Level = 1
	svc.profile.Experience = 100

	profile := svc.Grant(context.Background(), -10, "penalty", models.TypeChat)

	assert.Equal(t, int64(100), profile.Experience)
}

func TestLevelUpArithmetic(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Botcoins = 100
	svc.profile.Level = 1
	svc.profile.Experience = 950

	profile := svc.Grant(context.Background(), 60, "x", models.TypeChat)

	// 950 + 60*5 = 1250 >= 1000: уровень 2, остаток 250, бонус 1000
	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, int64(250), profile.Experience)
	assert.Equal(t, int64(100+60+1000), profile.Botcoins)
	require.Len(t, profile.History, 1)
	assert.Equal(t, int64(60), profile.History[0].CoinsChange)
	assert.Equal(t, models.TypeChat, profile.History[0].Type)
}

func TestSingleLevelUpPerGrant(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Botcoins = 0
	svc.profile.Level = 1
	svc.profile.Experience = 0

	profile := svc.Grant(context.Background(), 1000, "huge", models.TypeImage)

	// 5000 опыта пересекает несколько порогов, но переход ровно один
	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, int64(4000), profile.Experience)
	assert.Equal(t, int64(1000+1000), profile.Botcoins)
}

func TestHistoryCappedNewestFirst(t *testing.T) {
	svc, clock := newTestService(t)

	for i := 0; i < models.HistoryLimit+5; i++ {
		clock.Advance(time.Second)
		svc.Grant(context.Background(), 1, "grant", models.TypeChat)
	}

	profile := svc.Profile()
	require.Len(t, profile.History, models.HistoryLimit)

	// Новые записи в начале, старые вытеснены
	for i := 1; i < len(profile.History); i++ {
		assert.GreaterOrEqual(t, profile.History[i-1].Timestamp, profile.History[i].Timestamp)
	}
}

func TestClaimDailyRewardFirstClaimSucceeds(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Botcoins = 0

	claimed, profile := svc.ClaimDailyReward(context.Background())

	require.True(t, claimed)
	require.Len(t, profile.History, 1)
	assert.Equal(t, models.TypeReward, profile.History[0].Type)
	assert.Equal(t, models.DailyRewardDetail, profile.History[0].Detail)
	assert.Equal(t, int64(models.DailyRewardAmount), profile.History[0].CoinsChange)
}

func TestClaimDailyRewardIdempotentWithinWindow(t *testing.T) {
	svc, clock := newTestService(t)
	svc.profile.Botcoins = 0

	claimed, first := svc.ClaimDailyReward(context.Background())
	require.True(t, claimed)

	clock.Advance(time.Hour)
	claimed, second := svc.ClaimDailyReward(context.Background())

	assert.False(t, claimed)
	assert.Equal(t, first.Botcoins, second.Botcoins)
	assert.Len(t, second.History, len(first.History))
}

func TestClaimDailyRewardAfterWindow(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{name: "one hour", elapsed: time.Hour, want: false},
		{name: "just under 24h", elapsed: 24*time.Hour - time.Millisecond, want: false},
		{name: "exactly 24h", elapsed: 24 * time.Hour, want: true},
		{name: "25 hours", elapsed: 25 * time.Hour, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, clock := newTestService(t)

			claimed, _ := svc.ClaimDailyReward(context.Background())
			require.True(t, claimed)

			clock.Advance(tt.elapsed)
			claimed, _ = svc.ClaimDailyReward(context.Background())
			assert.Equal(t, tt.want, claimed)
		})
	}
}

func TestRoundTripThroughRepository(t *testing.T) {
	repo := memory.NewProfileRepository()
	clock := &fixedClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}

	first := newProfileService(repo, clock.Now)
	first.Load(context.Background())
	first.Grant(context.Background(), 10, "chat", models.TypeChat)
	claimed, want := first.ClaimDailyReward(context.Background())
	require.True(t, claimed)

	// Имитация перезапуска процесса
	second := newProfileService(repo, clock.Now)
	second.Load(context.Background())

	assert.Equal(t, want, second.Profile())

	// Маркер тоже пережил перезапуск: повторный клейм в окне остаётся no-op
	claimed, _ = second.ClaimDailyReward(context.Background())
	assert.False(t, claimed)
}

type failingRepository struct{}

func (failingRepository) LoadProfile(ctx context.Context) (*models.UserProfile, error) {
	return nil, errors.New("storage unavailable")
}

func (failingRepository) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	return errors.New("storage unavailable")
}

func (failingRepository) LoadLastClaim(ctx context.Context) (time.Time, error) {
	return time.Time{}, errors.New("storage unavailable")
}

func (failingRepository) SaveLastClaim(ctx context.Context, at time.Time) error {
	return errors.New("storage unavailable")
}

var _ repository.ProfileRepository = failingRepository{}

func TestStorageFailureIsNonFatal(t *testing.T) {
	svc := newProfileService(failingRepository{}, time.Now)
	svc.Load(context.Background())

	assert.Equal(t, models.DefaultProfile(), svc.Profile())

	profile := svc.Grant(context.Background(), 10, "chat", models.TypeChat)
	assert.Equal(t, models.DefaultProfile().Botcoins+10, profile.Botcoins)
	require.Len(t, profile.History, 1)

	claimed, _ := svc.ClaimDailyReward(context.Background())
	assert.True(t, claimed)
}

func TestSnapshotIsDetached(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Grant(context.Background(), 10, "chat", models.TypeChat)

	snapshot := svc.Profile()
	snapshot.History[0].Detail = "mutated"

	assert.Equal(t, "chat", svc.Profile().History[0].Detail)
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Level = 42
	svc.Grant(context.Background(), 10, "chat", models.TypeChat)
	svc.Grant(context.Background(), 50, "image", models.TypeImage)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.AssetsCreated)
	assert.Equal(t, 100-42, stats.Rank)
	assert.Equal(t, svc.Profile().Botcoins, stats.Botcoins)
}
