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

// PTOHandler manages the PTO request endpoints.
type PTOHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewPTOHandler constructs handler.
func NewPTOHandler(st *store.Store, dispatcher events.Dispatcher) *PTOHandler {
	return &PTOHandler{store: st, dispatcher: dispatcher}
}

// List GET /pto.
func (h *PTOHandler) List(c *fiber.Ctx) error {
	requests, err := h.store.PTO.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requests})
}

// Create POST /pto. Requests always start Pending.
func (h *PTOHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePTORequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.StartDate == "" || req.EndDate == "" {
		return apperrors.NewValidationError("startDate and endDate required", nil)
	}

	sess, _ := auth.SessionFromContext(c)
	staffID := req.StaffID
	if staffID == "" {
		staffID = sess.ID
	}

	now := h.store.Now()
	request := domain.PTORequest{
		ID:        newID(now),
		StaffID:   staffID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Type:      req.Type,
		Status:    domain.PTOPending,
		Notes:     req.Notes,
		CreatedAt: now,
	}
	if request.Type == "" {
		request.Type = domain.PTOVacation
	}

	if err := h.store.PTO.Create(c.Context(), request); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityCreated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityPTORequest,
		EntityID:   request.ID,
		Action:     "Created PTO Request",
		Details:    fmt.Sprintf("Requested %s from %s to %s", request.Type, request.StartDate, request.EndDate),
		Timestamp:  now,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": request})
}

// Update PATCH /pto/:id — dates, type, and notes only; decisions go through
// Approve and Reject.
func (h *PTOHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePTORequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id := c.Params("id")
	err := h.store.PTO.Update(c.Context(), id, func(r *domain.PTORequest) {
		if req.StartDate != nil {
			r.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			r.EndDate = *req.EndDate
		}
		if req.Type != nil {
			r.Type = *req.Type
		}
		if req.Notes != nil {
			r.Notes = *req.Notes
		}
	})
	if err != nil {
		return err
	}

	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityUpdated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityPTORequest,
		EntityID:   id,
		Action:     "Updated PTO Request",
		Details:    fmt.Sprintf("Updated PTO request %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	request, found, err := h.store.PTO.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": request})
}

// Approve POST /pto/:id/approve (manager-gated at the router).
func (h *PTOHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, domain.PTOApproved)
}

// Reject POST /pto/:id/reject (manager-gated at the router).
func (h *PTOHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, domain.PTORejected)
}

func (h *PTOHandler) decide(c *fiber.Ctx, status domain.PTOStatus) error {
	sess, _ := auth.SessionFromContext(c)
	id := c.Params("id")

	var err error
	if status == domain.PTOApproved {
		err = h.store.PTO.Approve(c.Context(), id, sess.ID)
	} else {
		err = h.store.PTO.Reject(c.Context(), id, sess.ID)
	}
	if err != nil {
		return err
	}

	action := "Approved PTO Request"
	if status == domain.PTORejected {
		action = "Rejected PTO Request"
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventPTODecided,
		Actor:      actorFrom(c),
		EntityType: domain.EntityPTORequest,
		EntityID:   id,
		Action:     action,
		Details:    fmt.Sprintf("%s PTO request", status),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	request, found, err := h.store.PTO.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": request})
}

// Delete DELETE /pto/:id.
func (h *PTOHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.PTO.Delete(c.Context(), id); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityDeleted,
		Actor:      actorFrom(c),
		EntityType: domain.EntityPTORequest,
		EntityID:   id,
		Action:     "Deleted PTO Request",
		Details:    fmt.Sprintf("Deleted PTO request %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
