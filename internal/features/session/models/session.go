package models

import "time"

// State представляет экранное состояние клиента
type State string

const (
	// StateIntro соответствует стартовой заставке, автоматически сменяется на StateAuth
	StateIntro State = "INTRO"
	// StateAuth соответствует экрану входа
	StateAuth State = "AUTH"
	// StateReplay повторяет заставку после успешного входа
	StateReplay State = "REPLAY"
	// StateDashboard соответствует рабочему экрану; терминального состояния нет
	StateDashboard State = "DASHBOARD"
)

// Tab представляет выбранную вкладку рабочего экрана
type Tab string

const (
	TabChat       Tab = "chat"
	TabImages     Tab = "images"
	TabVoice      Tab = "voice"
	TabBackground Tab = "background"
	TabSettings   Tab = "settings"
)

// IsValid проверяет, что вкладка принадлежит закрытому набору
func (t Tab) IsValid() bool {
	switch t {
	case TabChat, TabImages, TabVoice, TabBackground, TabSettings:
		return true
	}
	return false
}

// Session хранит временные точки, из которых выводится текущее состояние.
// Переходы по таймеру вычисляются при чтении, фоновых таймеров нет.
type Session struct {
	ID         string    `json:"id"`
	Username   string    `json:"username,omitempty"`
	Tab        Tab       `json:"tab"`
	CreatedAt  time.Time `json:"created_at"`
	LoggedInAt time.Time `json:"logged_in_at,omitempty"`
}

// StateAt возвращает состояние сессии на момент now
func (s *Session) StateAt(now time.Time, introDuration, replayDuration time.Duration) State {
	if s.LoggedInAt.IsZero() {
		if now.Sub(s.CreatedAt) < introDuration {
			return StateIntro
		}
		return StateAuth
	}
	if now.Sub(s.LoggedInAt) < replayDuration {
		return StateReplay
	}
	return StateDashboard
}

// Credentials представляет данные формы входа. Provider "google" соответствует
// альтернативной кнопке входа; реальной проверки учётных данных нет.
type Credentials struct {
	Username string `json:"username" example:"AgentForge"`
	Password string `json:"password,omitempty" example:"secret"`
	Provider string `json:"provider,omitempty" example:"google" enums:"google"`
}

// SessionResponse представляет публичное состояние сессии
// @Description Текущее состояние сессии и выбранная вкладка
type SessionResponse struct {
	ID       string `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	State    State  `json:"state" example:"DASHBOARD" enums:"INTRO,AUTH,REPLAY,DASHBOARD"`
	Tab      Tab    `json:"tab,omitempty" example:"chat" enums:"chat,images,voice,background,settings"`
	Username string `json:"username,omitempty" example:"AgentForge"`
}

// TabUpdate represents a tab selection request
type TabUpdate struct {
	Tab Tab `json:"tab" example:"images" enums:"chat,images,voice,background,settings"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}
