package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/session"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

const sessionLocalsKey = "session_user"

// Middleware loads the active session into the request context. The session
// is server-held local state, not a bearer token: the service acts as the one
// client the storage contract assumes.
type Middleware struct {
	sessions *session.Manager
}

// NewMiddleware constructs middleware over the session manager.
func NewMiddleware(sessions *session.Manager) *Middleware {
	return &Middleware{sessions: sessions}
}

// Handle rejects requests while no session is established.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	current, ok := m.sessions.Current()
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}
	c.Locals(sessionLocalsKey, current)
	return c.Next()
}

// SessionFromContext retrieves the session loaded by Handle.
func SessionFromContext(c *fiber.Ctx) (domain.UserSession, bool) {
	val := c.Locals(sessionLocalsKey)
	if val == nil {
		return domain.UserSession{}, false
	}
	sess, ok := val.(domain.UserSession)
	return sess, ok
}
