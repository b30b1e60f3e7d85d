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

// DeliverablesHandler manages the deliverable collection endpoints.
type DeliverablesHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewDeliverablesHandler constructs handler.
func NewDeliverablesHandler(st *store.Store, dispatcher events.Dispatcher) *DeliverablesHandler {
	return &DeliverablesHandler{store: st, dispatcher: dispatcher}
}

// List GET /deliverables.
func (h *DeliverablesHandler) List(c *fiber.Ctx) error {
	deliverables, err := h.store.Deliverables.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": deliverables})
}

// Get GET /deliverables/:id.
func (h *DeliverablesHandler) Get(c *fiber.Ctx) error {
	deliverable, found, err := h.store.Deliverables.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("deliverable", nil)
	}
	return c.JSON(fiber.Map{"data": deliverable})
}

// Create POST /deliverables.
func (h *DeliverablesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDeliverableRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || req.WorkstreamID == "" {
		return apperrors.NewValidationError("title and workstreamId required", nil)
	}
	if req.Progress < 0 || req.Progress > 100 {
		return apperrors.NewValidationError("progress must be between 0 and 100", nil)
	}

	now := h.store.Now()
	deliverable := domain.Deliverable{
		ID:           newID(now),
		Title:        req.Title,
		Description:  req.Description,
		WorkstreamID: req.WorkstreamID,
		OwnerID:      req.OwnerID,
		Status:       req.Status,
		Priority:     req.Priority,
		Risk:         req.Risk,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		Progress:     req.Progress,
		Dependencies: req.Dependencies,
		Tags:         req.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if deliverable.Status == "" {
		deliverable.Status = domain.StatusNotStarted
	}
	if deliverable.Dependencies == nil {
		deliverable.Dependencies = []string{}
	}
	if deliverable.Tags == nil {
		deliverable.Tags = []string{}
	}

	if err := h.store.Deliverables.Create(c.Context(), deliverable); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityCreated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityDeliverable,
		EntityID:   deliverable.ID,
		Action:     "Created Deliverable",
		Details:    fmt.Sprintf("Created deliverable %s", deliverable.Title),
		Timestamp:  now,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": deliverable})
}

// Update PATCH /deliverables/:id. Every applied update refreshes UpdatedAt in
// the store; Status and Progress stay independent.
func (h *DeliverablesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateDeliverableRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Progress != nil && (*req.Progress < 0 || *req.Progress > 100) {
		return apperrors.NewValidationError("progress must be between 0 and 100", nil)
	}

	id := c.Params("id")
	err := h.store.Deliverables.Update(c.Context(), id, func(d *domain.Deliverable) {
		if req.Title != nil {
			d.Title = *req.Title
		}
		if req.Description != nil {
			d.Description = *req.Description
		}
		if req.WorkstreamID != nil {
			d.WorkstreamID = *req.WorkstreamID
		}
		if req.OwnerID != nil {
			d.OwnerID = *req.OwnerID
		}
		if req.Status != nil {
			d.Status = *req.Status
		}
		if req.Priority != nil {
			d.Priority = *req.Priority
		}
		if req.Risk != nil {
			d.Risk = *req.Risk
		}
		if req.StartDate != nil {
			d.StartDate = *req.StartDate
		}
		if req.DueDate != nil {
			d.DueDate = *req.DueDate
		}
		if req.CompletedDate != nil {
			d.CompletedDate = *req.CompletedDate
		}
		if req.Progress != nil {
			d.Progress = *req.Progress
		}
		if req.Dependencies != nil {
			d.Dependencies = *req.Dependencies
		}
		if req.Tags != nil {
			d.Tags = *req.Tags
		}
	})
	if err != nil {
		return err
	}

	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityUpdated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityDeliverable,
		EntityID:   id,
		Action:     "Updated Deliverable",
		Details:    fmt.Sprintf("Updated deliverable %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	deliverable, found, err := h.store.Deliverables.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": deliverable})
}

// SetStatus POST /deliverables/:id/status — the kanban drag path.
func (h *DeliverablesHandler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		Status domain.DeliverableStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	valid := false
	for _, s := range domain.BoardStatuses {
		if s == req.Status {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}

	id := c.Params("id")
	if err := h.store.Deliverables.SetStatus(c.Context(), id, req.Status); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityUpdated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityDeliverable,
		EntityID:   id,
		Action:     "Updated Deliverable",
		Details:    fmt.Sprintf("Moved deliverable %s to %s", id, req.Status),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	deliverable, found, err := h.store.Deliverables.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": deliverable})
}

// Delete DELETE /deliverables/:id.
func (h *DeliverablesHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.Deliverables.Delete(c.Context(), id); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityDeleted,
		Actor:      actorFrom(c),
		EntityType: domain.EntityDeliverable,
		EntityID:   id,
		Action:     "Deleted Deliverable",
		Details:    fmt.Sprintf("Deleted deliverable %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
