package service

import (
	"context"
	"strings"

	"botforge-backend/internal/features/session/models"
)

// Authenticator decides whether login credentials grant access. The default
// implementation grants access unconditionally; a real check can replace it
// without touching the state machine.
type Authenticator interface {
	Authenticate(ctx context.Context, creds models.Credentials) (username string, err error)
}

type allowAllAuthenticator struct{}

// NewAllowAllAuthenticator returns the stub authenticator: any submitted form
// and the decorative alternate-provider button both succeed.
func NewAllowAllAuthenticator() Authenticator {
	return allowAllAuthenticator{}
}

func (allowAllAuthenticator) Authenticate(_ context.Context, creds models.Credentials) (string, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" {
		username = "AgentForge"
	}
	return username, nil
}
