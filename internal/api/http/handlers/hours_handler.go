package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/api/dto"
	"github.com/govkit/governance-service/internal/auth"
	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/events"
	"github.com/govkit/governance-service/internal/store"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// HoursHandler manages the hours-log endpoints.
type HoursHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewHoursHandler constructs handler.
func NewHoursHandler(st *store.Store, dispatcher events.Dispatcher) *HoursHandler {
	return &HoursHandler{store: st, dispatcher: dispatcher}
}

// List GET /hours. An optional staffId query narrows to one member's logs.
func (h *HoursHandler) List(c *fiber.Ctx) error {
	if staffID := c.Query("staffId"); staffID != "" {
		logs, err := h.store.Hours.ListByStaff(c.Context(), staffID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": logs})
	}
	logs, err := h.store.Hours.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": logs})
}

// Create POST /hours.
func (h *HoursHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateHoursLogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Hours < 0 {
		return apperrors.NewValidationError("hours must not be negative", nil)
	}
	if req.Date == "" || req.DeliverableID == "" {
		return apperrors.NewValidationError("date and deliverableId required", nil)
	}

	sess, _ := auth.SessionFromContext(c)
	staffID := req.StaffID
	if staffID == "" {
		staffID = sess.ID
	}

	now := h.store.Now()
	log := domain.HoursLog{
		ID:            newID(now),
		StaffID:       staffID,
		DeliverableID: req.DeliverableID,
		Date:          req.Date,
		Hours:         req.Hours,
		Description:   req.Description,
		CreatedAt:     now,
	}
	if err := h.store.Hours.Create(c.Context(), log); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventHoursLogged,
		Actor:      actorFrom(c),
		EntityType: domain.EntityHoursLog,
		EntityID:   log.ID,
		Action:     "Logged Hours",
		Details:    fmt.Sprintf("Logged %.2f hours on %s", log.Hours, log.Date),
		Timestamp:  now,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": log})
}

// Update PATCH /hours/:id.
func (h *HoursHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateHoursLogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Hours != nil && *req.Hours < 0 {
		return apperrors.NewValidationError("hours must not be negative", nil)
	}

	id := c.Params("id")
	err := h.store.Hours.Update(c.Context(), id, func(l *domain.HoursLog) {
		if req.DeliverableID != nil {
			l.DeliverableID = *req.DeliverableID
		}
		if req.Date != nil {
			l.Date = *req.Date
		}
		if req.Hours != nil {
			l.Hours = *req.Hours
		}
		if req.Description != nil {
			l.Description = *req.Description
		}
	})
	if err != nil {
		return err
	}

	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityUpdated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityHoursLog,
		EntityID:   id,
		Action:     "Updated Hours Log",
		Details:    fmt.Sprintf("Updated hours log %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	log, found, err := h.store.Hours.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": log})
}

// Delete DELETE /hours/:id.
func (h *HoursHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.Hours.Delete(c.Context(), id); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityDeleted,
		Actor:      actorFrom(c),
		EntityType: domain.EntityHoursLog,
		EntityID:   id,
		Action:     "Deleted Hours Log",
		Details:    fmt.Sprintf("Deleted hours log %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
