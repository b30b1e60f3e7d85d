package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/audit"
	"github.com/govkit/governance-service/internal/domain"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// AuditHandler exposes read-only views over the audit trail.
type AuditHandler struct {
	log *audit.Log
}

// NewAuditHandler constructs handler.
func NewAuditHandler(log *audit.Log) *AuditHandler {
	return &AuditHandler{log: log}
}

// Recent GET /audit/recent?limit=N. The limit defaults when absent or invalid.
func (h *AuditHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", audit.DefaultRecentLimit)
	entries, err := h.log.Recent(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// ByUser GET /audit/user/:id.
func (h *AuditHandler) ByUser(c *fiber.Ctx) error {
	entries, err := h.log.ByUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// ByEntity GET /audit/entity/:type/:id.
func (h *AuditHandler) ByEntity(c *fiber.Ctx) error {
	entityType := domain.EntityType(c.Params("type"))
	if !entityType.Valid() {
		return apperrors.NewValidationError("unknown entity type", map[string]any{"type": string(entityType)})
	}
	entries, err := h.log.ByEntity(c.Context(), entityType, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// Stats GET /audit/stats.
func (h *AuditHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.log.ActivityStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
