package service

import (
	"context"

	"botforge-backend/internal/features/session/models"
)

// SessionService drives the linear screen progression
// intro -> auth -> (replay) -> dashboard and tab selection within the
// dashboard. It never mutates profile state.
type SessionService interface {
	Create(ctx context.Context) *models.SessionResponse
	Get(ctx context.Context, id string) (*models.SessionResponse, error)
	Login(ctx context.Context, id string, creds models.Credentials) (*models.SessionResponse, error)
	SelectTab(ctx context.Context, id string, tab models.Tab) (*models.SessionResponse, error)
}
