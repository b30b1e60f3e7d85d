package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/audit"
	"github.com/govkit/governance-service/internal/derive"
	"github.com/govkit/governance-service/internal/domain"
	"github.com/govkit/governance-service/internal/store"
	apperrors "github.com/govkit/governance-service/pkg/util"
)

// ViewsHandler serves the derived read models the dashboard renders from.
// Every view is computed on request from the underlying collections; nothing
// here writes.
type ViewsHandler struct {
	store *store.Store
	log   *audit.Log
}

// NewViewsHandler constructs handler.
func NewViewsHandler(st *store.Store, log *audit.Log) *ViewsHandler {
	return &ViewsHandler{store: st, log: log}
}

// Dashboard GET /views/dashboard?ownerId=. Headline counts plus the most
// recent audit entries.
func (h *ViewsHandler) Dashboard(c *fiber.Ctx) error {
	deliverables, err := h.store.Deliverables.GetAll(c.Context())
	if err != nil {
		return err
	}
	if ownerID := c.Query("ownerId"); ownerID != "" {
		deliverables = derive.FilterByOwner(deliverables, ownerID)
	}

	recent, err := h.log.Recent(c.Context(), 10)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"stats":          derive.Dashboard(deliverables),
		"recentActivity": recent,
	}})
}

// Kanban GET /views/kanban?groupBy=status|workstream|owner.
func (h *ViewsHandler) Kanban(c *fiber.Ctx) error {
	deliverables, err := h.store.Deliverables.GetAll(c.Context())
	if err != nil {
		return err
	}

	groupBy := c.Query("groupBy", "status")
	var columns []derive.KanbanColumn
	switch groupBy {
	case "status":
		columns = derive.GroupByStatus(deliverables)
	case "workstream":
		workstreams, err := h.store.Workstreams.GetAll(c.Context())
		if err != nil {
			return err
		}
		columns = derive.GroupByWorkstream(deliverables, workstreams)
	case "owner":
		staff, err := h.store.Staff.GetAll(c.Context())
		if err != nil {
			return err
		}
		columns = derive.GroupByOwner(deliverables, staff)
	default:
		return apperrors.NewValidationError("unknown groupBy", map[string]any{"groupBy": groupBy})
	}
	return c.JSON(fiber.Map{"data": columns})
}

type ganttBar struct {
	Deliverable domain.Deliverable `json:"deliverable"`
	Position    derive.BarPosition `json:"position"`
}

type ganttRow struct {
	Workstream domain.Workstream `json:"workstream"`
	Bars       []ganttBar        `json:"bars"`
}

// Gantt GET /views/gantt. The window is anchored at the current day.
func (h *ViewsHandler) Gantt(c *fiber.Ctx) error {
	workstreams, err := h.store.Workstreams.GetAll(c.Context())
	if err != nil {
		return err
	}
	deliverables, err := h.store.Deliverables.GetAll(c.Context())
	if err != nil {
		return err
	}

	timeline := derive.NewTimeline(h.store.Now())
	rows := make([]ganttRow, 0, len(workstreams))
	for _, group := range derive.GroupForGantt(workstreams, deliverables) {
		row := ganttRow{Workstream: group.Workstream, Bars: []ganttBar{}}
		for _, d := range group.Deliverables {
			row.Bars = append(row.Bars, ganttBar{
				Deliverable: d,
				Position:    timeline.Bar(d.StartDate, d.DueDate),
			})
		}
		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"timeline": timeline,
		"rows":     rows,
	}})
}

// OrgHierarchy GET /views/org/hierarchy.
func (h *ViewsHandler) OrgHierarchy(c *fiber.Ctx) error {
	staff, err := h.store.Staff.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": derive.BuildHierarchy(staff)})
}

// OrgWorkstreams GET /views/org/workstreams.
func (h *ViewsHandler) OrgWorkstreams(c *fiber.Ctx) error {
	workstreams, err := h.store.Workstreams.GetAll(c.Context())
	if err != nil {
		return err
	}
	staff, err := h.store.Staff.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": derive.MembersByWorkstream(workstreams, staff)})
}

// Table GET /views/table?sort=&dir=. Unsorted collection order when no sort
// field is given.
func (h *ViewsHandler) Table(c *fiber.Ctx) error {
	deliverables, err := h.store.Deliverables.GetAll(c.Context())
	if err != nil {
		return err
	}

	if field := c.Query("sort"); field != "" {
		dir := derive.SortDirection(c.Query("dir", string(derive.SortAsc)))
		if dir != derive.SortAsc && dir != derive.SortDesc {
			return apperrors.NewValidationError("dir must be asc or desc", nil)
		}
		deliverables = derive.SortDeliverables(deliverables, derive.SortField(field), dir)
	}
	return c.JSON(fiber.Map{"data": deliverables})
}

// HoursSummary GET /views/hours/summary. Per-staff totals plus the current
// calendar week.
func (h *ViewsHandler) HoursSummary(c *fiber.Ctx) error {
	staff, err := h.store.Staff.GetAll(c.Context())
	if err != nil {
		return err
	}
	logs, err := h.store.Hours.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"byStaff":  derive.SummarizeByStaff(staff, logs),
		"total":    derive.TotalHours(logs),
		"thisWeek": derive.HoursThisWeek(logs, h.store.Now()),
	}})
}

// TopUsers GET /views/activity/users. Staff ranked by recorded actions.
func (h *ViewsHandler) TopUsers(c *fiber.Ctx) error {
	staff, err := h.store.Staff.GetAll(c.Context())
	if err != nil {
		return err
	}
	entries, err := h.log.All(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": derive.RankUserActivity(staff, entries)})
}
