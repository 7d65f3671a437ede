package models

// ActivityType классифицирует запись истории активности
type ActivityType string

const (
	TypeChat   ActivityType = "CHAT"
	TypeImage  ActivityType = "IMAGE"
	TypeVoice  ActivityType = "VOICE"
	TypeReward ActivityType = "REWARD"
)

// IsValid проверяет, что тип активности принадлежит закрытому набору
func (t ActivityType) IsValid() bool {
	switch t {
	case TypeChat, TypeImage, TypeVoice, TypeReward:
		return true
	}
	return false
}

const (
	// HistoryLimit ограничивает длину истории активности
	HistoryLimit = 50

	// ExperiencePerCoin задаёт множитель опыта за каждый начисленный botcoin
	ExperiencePerCoin = 5

	// LevelThresholdStep определяет порог опыта: до следующего уровня нужно level * LevelThresholdStep
	LevelThresholdStep = 1000

	// LevelUpBonus начисляется при повышении уровня
	LevelUpBonus = 1000

	// DailyRewardAmount задаёт размер ежедневной награды
	DailyRewardAmount = 500

	// DailyRewardDetail содержит описание ежедневной награды в истории
	DailyRewardDetail = "Daily Grand Reward"
)

// ActivityItem представляет одну запись истории активности
// @Description Запись истории начисления botcoins
type ActivityItem struct {
	ID          string       `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Type        ActivityType `json:"type" example:"CHAT" enums:"CHAT,IMAGE,VOICE,REWARD"`
	Timestamp   int64        `json:"timestamp" example:"1718000000000" description:"Момент создания, epoch ms"`
	Detail      string       `json:"detail" example:"Advanced Neural Link Established"`
	CoinsChange int64        `json:"coinsChange" example:"10" description:"Запрошенная дельта botcoins"`
}

// UserProfile представляет полный профиль пользователя
// @Description Профиль пользователя с валютой, уровнем и историей
type UserProfile struct {
	ID         string         `json:"id" example:"user_1"`
	Username   string         `json:"username" example:"AgentForge"`
	Email      string         `json:"email" example:"agent@botforge.ai"`
	Avatar     string         `json:"avatar" example:"https://picsum.photos/seed/botforge/200/200"`
	Botcoins   int64          `json:"botcoins" example:"9999999"`
	Level      int            `json:"level" example:"99"`
	Experience int64          `json:"experience" example:"0"`
	History    []ActivityItem `json:"history"`
}

// LevelThreshold возвращает порог опыта для текущего уровня
func (p *UserProfile) LevelThreshold() int64 {
	return int64(p.Level) * LevelThresholdStep
}

// DefaultProfile возвращает профиль, используемый при отсутствии
// или повреждении сохранённого состояния
func DefaultProfile() UserProfile {
	return UserProfile{
		ID:         "user_1",
		Username:   "AgentForge",
		Email:      "agent@botforge.ai",
		Avatar:     "https://picsum.photos/seed/botforge/200/200",
		Botcoins:   9999999,
		Level:      99,
		Experience: 0,
		History:    []ActivityItem{},
	}
}
