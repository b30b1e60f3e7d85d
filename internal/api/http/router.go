package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govkit/governance-service/internal/api/http/handlers"
	"github.com/govkit/governance-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	Staff          *handlers.StaffHandler
	Workstreams    *handlers.WorkstreamsHandler
	Deliverables   *handlers.DeliverablesHandler
	PTO            *handlers.PTOHandler
	Hours          *handlers.HoursHandler
	Audit          *handlers.AuditHandler
	Views          *handlers.ViewsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	session := app.Group("/session")
	session.Get("/", cfg.Session.Me)
	session.Post("/login", cfg.Session.Login)
	session.Post("/identity", cfg.Session.LoginWithIdentity)
	session.Post("/logout", cfg.Session.Logout)
	session.Post("/hint", cfg.Session.SetHint)

	api := app.Group("", cfg.AuthMiddleware.Handle)

	api.Get("/metrics", auth.RequireAdmin(), cfg.Health.Metrics)

	staff := api.Group("/staff")
	staff.Get("/", cfg.Staff.List)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Post("/", auth.RequireAdmin(), cfg.Staff.Create)
	staff.Patch("/:id", cfg.Staff.Update)
	staff.Delete("/:id", auth.RequireAdmin(), cfg.Staff.Delete)

	workstreams := api.Group("/workstreams")
	workstreams.Get("/", cfg.Workstreams.List)
	workstreams.Get("/:id", cfg.Workstreams.Get)
	workstreams.Post("/", cfg.Workstreams.Create)
	workstreams.Patch("/:id", cfg.Workstreams.Update)
	workstreams.Delete("/:id", cfg.Workstreams.Delete)

	deliverables := api.Group("/deliverables")
	deliverables.Get("/", cfg.Deliverables.List)
	deliverables.Get("/:id", cfg.Deliverables.Get)
	deliverables.Post("/", cfg.Deliverables.Create)
	deliverables.Patch("/:id", cfg.Deliverables.Update)
	deliverables.Post("/:id/status", cfg.Deliverables.SetStatus)
	deliverables.Delete("/:id", cfg.Deliverables.Delete)

	pto := api.Group("/pto")
	pto.Get("/", cfg.PTO.List)
	pto.Post("/", cfg.PTO.Create)
	pto.Patch("/:id", cfg.PTO.Update)
	pto.Post("/:id/approve", auth.RequireManager(), cfg.PTO.Approve)
	pto.Post("/:id/reject", auth.RequireManager(), cfg.PTO.Reject)
	pto.Delete("/:id", cfg.PTO.Delete)

	hours := api.Group("/hours")
	hours.Get("/", cfg.Hours.List)
	hours.Post("/", cfg.Hours.Create)
	hours.Patch("/:id", cfg.Hours.Update)
	hours.Delete("/:id", cfg.Hours.Delete)

	audit := api.Group("/audit", auth.RequireAdmin())
	audit.Get("/recent", cfg.Audit.Recent)
	audit.Get("/stats", cfg.Audit.Stats)
	audit.Get("/user/:id", cfg.Audit.ByUser)
	audit.Get("/entity/:type/:id", cfg.Audit.ByEntity)

	views := api.Group("/views")
	views.Get("/dashboard", cfg.Views.Dashboard)
	views.Get("/kanban", cfg.Views.Kanban)
	views.Get("/gantt", cfg.Views.Gantt)
	views.Get("/org/hierarchy", cfg.Views.OrgHierarchy)
	views.Get("/org/workstreams", cfg.Views.OrgWorkstreams)
	views.Get("/table", cfg.Views.Table)
	views.Get("/hours/summary", cfg.Views.HoursSummary)
	views.Get("/activity/users", auth.RequireAdmin(), cfg.Views.TopUsers)
}
