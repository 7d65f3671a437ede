package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "botforge-backend/internal/common/errors"
	"botforge-backend/internal/features/session/models"
)

type sessionService struct {
	authenticator  Authenticator
	introDuration  time.Duration
	replayDuration time.Duration
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewSessionService(authenticator Authenticator, introDuration, replayDuration time.Duration) SessionService {
	return newSessionService(authenticator, introDuration, replayDuration, time.Now)
}

func newSessionService(authenticator Authenticator, introDuration, replayDuration time.Duration, now func() time.Time) *sessionService {
	return &sessionService{
		authenticator:  authenticator,
		introDuration:  introDuration,
		replayDuration: replayDuration,
		now:            now,
		sessions:       make(map[string]*models.Session),
	}
}

func (s *sessionService) Create(ctx context.Context) *models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &models.Session{
		ID:        uuid.NewString(),
		Tab:       models.TabChat,
		CreatedAt: s.now(),
	}
	s.sessions[session.ID] = session

	return s.toResponseLocked(session)
}

func (s *sessionService) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NewSessionNotFoundError(id)
	}

	return s.toResponseLocked(session), nil
}

func (s *sessionService) Login(ctx context.Context, id string, creds models.Credentials) (*models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NewSessionNotFoundError(id)
	}

	state := session.StateAt(s.now(), s.introDuration, s.replayDuration)
	if state != models.StateAuth {
		return nil, apperrors.NewInvalidTransitionError(string(state), "login")
	}

	username, err := s.authenticator.Authenticate(ctx, creds)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Authentication failed")
	}

	session.Username = username
	session.LoggedInAt = s.now()

	return s.toResponseLocked(session), nil
}

func (s *sessionService) SelectTab(ctx context.Context, id string, tab models.Tab) (*models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NewSessionNotFoundError(id)
	}

	if !tab.IsValid() {
		return nil, apperrors.NewValidationError("tab", "unknown tab")
	}

	state := session.StateAt(s.now(), s.introDuration, s.replayDuration)
	if state != models.StateDashboard {
		return nil, apperrors.NewInvalidTransitionError(string(state), "select_tab")
	}

	session.Tab = tab

	return s.toResponseLocked(session), nil
}

func (s *sessionService) toResponseLocked(session *models.Session) *models.SessionResponse {
	resp := &models.SessionResponse{
		ID:       session.ID,
		State:    session.StateAt(s.now(), s.introDuration, s.replayDuration),
		Username: session.Username,
	}
	if resp.State == models.StateDashboard {
		resp.Tab = session.Tab
	}
	return resp
}
