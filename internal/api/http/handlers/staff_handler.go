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

// StaffHandler manages the staff collection endpoints.
type StaffHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewStaffHandler constructs handler.
func NewStaffHandler(st *store.Store, dispatcher events.Dispatcher) *StaffHandler {
	return &StaffHandler{store: st, dispatcher: dispatcher}
}

// List GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	staff, err := h.store.Staff.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staff})
}

// Get GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, found, err := h.store.Staff.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("staff member", nil)
	}
	return c.JSON(fiber.Map{"data": staff})
}

// Create POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	now := h.store.Now()
	staff := domain.Staff{
		ID:            newID(now),
		Name:          req.Name,
		Title:         req.Title,
		Role:          req.Role,
		Email:         req.Email,
		Department:    req.Department,
		SupervisorID:  req.SupervisorID,
		WorkstreamIDs: req.WorkstreamIDs,
		UserRole:      req.UserRole,
		IsActive:      true,
		CreatedAt:     now,
	}
	if req.UserRole == "" {
		staff.UserRole = domain.RoleUser
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := h.store.Staff.Create(c.Context(), staff); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityCreated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityStaff,
		EntityID:   staff.ID,
		Action:     "Created Staff",
		Details:    fmt.Sprintf("Created staff member %s", staff.Name),
		Timestamp:  now,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staff})
}

// Update PATCH /staff/:id. Missing ids are a silent no-op per the store
// contract; the response carries whatever the collection now holds.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id := c.Params("id")
	err := h.store.Staff.Update(c.Context(), id, func(s *domain.Staff) {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Title != nil {
			s.Title = *req.Title
		}
		if req.Role != nil {
			s.Role = *req.Role
		}
		if req.Email != nil {
			s.Email = *req.Email
		}
		if req.Department != nil {
			s.Department = *req.Department
		}
		if req.SupervisorID != nil {
			s.SupervisorID = req.SupervisorID
		}
		if req.WorkstreamIDs != nil {
			s.WorkstreamIDs = *req.WorkstreamIDs
		}
		if req.UserRole != nil {
			s.UserRole = *req.UserRole
		}
		if req.IsActive != nil {
			s.IsActive = *req.IsActive
		}
	})
	if err != nil {
		return err
	}

	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityUpdated,
		Actor:      actorFrom(c),
		EntityType: domain.EntityStaff,
		EntityID:   id,
		Action:     "Updated Staff",
		Details:    fmt.Sprintf("Updated staff member %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}

	staff, found, err := h.store.Staff.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": staff})
}

// Delete DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.Staff.Delete(c.Context(), id); err != nil {
		return err
	}
	if err := h.dispatcher.Publish(c.Context(), events.Event{
		Type:       events.EventEntityDeleted,
		Actor:      actorFrom(c),
		EntityType: domain.EntityStaff,
		EntityID:   id,
		Action:     "Deleted Staff",
		Details:    fmt.Sprintf("Deleted staff member %s", id),
		Timestamp:  h.store.Now(),
	}); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
