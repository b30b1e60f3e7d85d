package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/api/dto"
	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/events"
	"github.com/govkit/governance-service/internal/store"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// WorkstreamsHandler manages the workstream collection endpoints.
type WorkstreamsHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewWorkstreamsHandler constructs handler.
func NewWorkstreamsHandler(st *store.Store, dispatcher events.Dispatcher) *WorkstreamsHandler {
	return &WorkstreamsHandler{store: st, dispatcher: dispatcher}
}

// List GET /workstreams.
func (h *WorkstreamsHandler) List(c *fiber.Ctx) error {
	workstreams, err := h.store.Workstreams.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workstreams})
}

// Get GET /workstreams/:id.
func (h *WorkstreamsHandler) Get(c *fiber.Ctx) error {
	workstream, found, err := h.store.Workstreams.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("workstream", nil)
	}
	return c.JSON(fiber.Map{"data": workstream})
}

// Create POST /workstreams.
func (h *WorkstreamsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkstreamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	now := h.store.Now()
	workstream := domain.Workstream{
		ID:          newID(now),
		Name:        req.Name,
		Description: req.Description,
		Lead:        req.Lead,
		Color:       req.Color,
		CreatedAt:   now,
	}
	if err := h.store.Workstreams.Create(c.Context(), workstream); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityCreated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityWorkstream,
		EntityID:   workstream.ID,
		Action:     "Created Workstream",
		Details:    fmt.Sprintf("Created workstream %s", workstream.Name),
		Timestamp:  now,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": workstream})
}

// Update PATCH /workstreams/:id.
func (h *WorkstreamsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWorkstreamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id := c.Params("id")
	err := h.store.Workstreams.Update(c.Context(), id, func(w *domain.Workstream) {
		if req.Name != nil {
			w.Name = *req.Name
		}
		if req.Description != nil {
			w.Description = *req.Description
		}
		if req.Lead != nil {
			w.Lead = *req.Lead
		}
		if req.Color != nil {
			w.Color = *req.Color
		}
	})
	if err != nil {
		return err
	}

	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityUpdated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityWorkstream,
		EntityID:   id,
		Action:     "Updated Workstream",
		Details:    fmt.Sprintf("Updated workstream %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	workstream, found, err := h.store.Workstreams.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": workstream})
}

// Delete DELETE /workstreams/:id.
func (h *WorkstreamsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.Workstreams.Delete(c.Context(), id); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityDeleted,
		Actor:      actorFrom(c),
		EntityType: domain.EntityWorkstream,
		EntityID:   id,
		Action:     "Deleted Workstream",
		Details:    fmt.Sprintf("Deleted workstream %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
