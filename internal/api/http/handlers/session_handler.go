package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/api/dto"
	"github.com/govkit/governance-service/internal/session"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// SessionHandler exposes login, logout, and the current-session probe.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Me GET /session. Reports the active session or data:null when none.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	current, ok := h.sessions.Current()
	if !ok {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": current})
}

// Login POST /session/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.StaffID == "" {
		return apperrors.NewValidationError("staffId required", nil)
	}

	sess, ok, err := h.sessions.Login(c.Context(), req.StaffID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFound("staff member", map[string]any{"staffId": req.StaffID})
	}
	return c.JSON(fiber.Map{"data": sess})
}

// LoginWithIdentity POST /session/identity. Accepts an externally issued
// credential and resolves it to a staff session or a low-privilege guest.
func (h *SessionHandler) LoginWithIdentity(c *fiber.Ctx) error {
	var req dto.IdentityLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Credential == "" {
		return apperrors.NewValidationError("credential required", nil)
	}

	sess, err := h.sessions.LoginWithIdentity(c.Context(), req.Credential)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sess})
}

// Logout POST /session/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.Context()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// SetHint POST /session/hint. Stores the manual hint auto-detect consults.
func (h *SessionHandler) SetHint(c *fiber.Ctx) error {
	var req dto.UsernameHintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Hint == "" {
		return apperrors.NewValidationError("hint required", nil)
	}
	if err := h.sessions.SetUsernameHint(c.Context(), req.Hint); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
