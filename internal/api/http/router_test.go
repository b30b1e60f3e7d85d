package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/govkit/governance-service/internal/api/http/handlers"
	"github.com/govkit/governance-service/internal/audit"
	"github.com/govkit/governance-service/internal/auth"
	"github.com/govkit/governance-service/internal/events"
	"github.com/govkit/governance-service/internal/observability"
	"github.com/govkit/governance-service/internal/session"
	"github.com/govkit/governance-service/internal/storage"
	"github.com/govkit/governance-service/internal/store"
)

type apiFixture struct {
	app      *fiber.App
	store    *store.Store
	log      *audit.Log
	sessions *session.Manager
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	backend := storage.NewMemory()
	st := store.New(backend)
	dispatcher := events.NewInMemoryDispatcher()
	log := audit.NewLog(backend)
	audit.SubscribeRecorder(dispatcher, log)

	logger := zap.NewNop()
	sessions := session.NewManager(st, dispatcher, logger, "")

	require.NoError(t, st.Seed(context.Background()))

	metrics := observability.NewMetrics()
	for _, eventType := range events.AllTypes {
		dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			metrics.RecordMutation(string(e.EntityType), string(e.Type))
			return nil
		})
	}

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("governance", "test", backend, metrics),
		Session:        handlers.NewSessionHandler(sessions),
		Staff:          handlers.NewStaffHandler(st, dispatcher),
		Workstreams:    handlers.NewWorkstreamsHandler(st, dispatcher),
		Deliverables:   handlers.NewDeliverablesHandler(st, dispatcher),
		PTO:            handlers.NewPTOHandler(st, dispatcher),
		Hours:          handlers.NewHoursHandler(st, dispatcher),
		Audit:          handlers.NewAuditHandler(log),
		Views:          handlers.NewViewsHandler(st, log),
		AuthMiddleware: auth.NewMiddleware(sessions),
	})

	return &apiFixture{app: app, store: st, log: log, sessions: sessions}
}

func (f *apiFixture) loginAs(t *testing.T, staffID string) {
	t.Helper()
	_, ok, err := f.sessions.Login(context.Background(), staffID)
	require.NoError(t, err)
	require.True(t, ok)
}

func (f *apiFixture) request(t *testing.T, method, path string, body any) *stdhttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *stdhttp.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestHealthLive(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.request(t, stdhttp.MethodGet, "/health/live", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}

func TestRequestsWithoutSessionRejected(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.request(t, stdhttp.MethodGet, "/deliverables/", nil)
	require.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestDeliverableCreateUpdateFlow(t *testing.T) {
	f := newAPIFixture(t)
	f.loginAs(t, "1")

	resp := f.request(t, stdhttp.MethodPost, "/deliverables/", map[string]any{
		"title":        "Observability Rollout",
		"workstreamId": "3",
		"ownerId":      "2",
		"priority":     "High",
		"startDate":    "2026-09-01",
		"dueDate":      "2026-10-15",
	})
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)
	created := decodeData(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Not Started", created["status"])

	resp = f.request(t, stdhttp.MethodPatch, "/deliverables/"+id, map[string]any{
		"progress": 20,
		"status":   "In Progress",
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	updated := decodeData(t, resp)
	assert.Equal(t, float64(20), updated["progress"])
	assert.Equal(t, "In Progress", updated["status"])

	entries, err := f.log.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Updated Deliverable", entries[0].Action)
	assert.Equal(t, "Sarah Johnson", entries[0].UserName)
}

func TestUpdateMissingDeliverableReturnsNullData(t *testing.T) {
	f := newAPIFixture(t)
	f.loginAs(t, "1")

	resp := f.request(t, stdhttp.MethodPatch, "/deliverables/does-not-exist", map[string]any{
		"progress": 50,
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeData(t, resp))
}

func TestDeliverableSetStatusRejectsUnknownColumn(t *testing.T) {
	f := newAPIFixture(t)
	f.loginAs(t, "1")

	resp := f.request(t, stdhttp.MethodPost, "/deliverables/1/status", map[string]any{
		"status": "Parked",
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
}

func TestStaffCreateRequiresAdmin(t *testing.T) {
	f := newAPIFixture(t)
	f.loginAs(t, "3") // Emma, RoleUser

	resp := f.request(t, stdhttp.MethodPost, "/staff/", map[string]any{
		"name":  "New Hire",
		"email": "new.h@company.com",
	})
	assert.Equal(t, stdhttp.StatusForbidden, resp.StatusCode)
}

func TestAuditRoutesAdminGated(t *testing.T) {
	f := newAPIFixture(t)

	f.loginAs(t, "2") // Michael, RoleManager
	resp := f.request(t, stdhttp.MethodGet, "/audit/recent", nil)
	assert.Equal(t, stdhttp.StatusForbidden, resp.StatusCode)

	f.loginAs(t, "1") // Sarah, RoleAdmin
	resp = f.request(t, stdhttp.MethodGet, "/audit/recent", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}

func TestPTOApprovalRequiresManager(t *testing.T) {
	f := newAPIFixture(t)
	f.loginAs(t, "3")

	resp := f.request(t, stdhttp.MethodPost, "/pto/", map[string]any{
		"startDate": "2026-09-07",
		"endDate":   "2026-09-11",
		"type":      "Vacation",
	})
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)
	created := decodeData(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Pending", created["status"])

	// a User-role session cannot decide requests
	resp = f.request(t, stdhttp.MethodPost, "/pto/"+id+"/approve", nil)
	assert.Equal(t, stdhttp.StatusForbidden, resp.StatusCode)

	f.loginAs(t, "2")
	resp = f.request(t, stdhttp.MethodPost, "/pto/"+id+"/approve", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	decided := decodeData(t, resp)
	assert.Equal(t, "Approved", decided["status"])
	assert.Equal(t, "2", decided["approvedBy"])
}

func TestMetricsEndpointAdminGated(t *testing.T) {
	f := newAPIFixture(t)

	f.loginAs(t, "3")
	resp := f.request(t, stdhttp.MethodGet, "/metrics", nil)
	assert.Equal(t, stdhttp.StatusForbidden, resp.StatusCode)

	f.loginAs(t, "1")
	resp = f.request(t, stdhttp.MethodPost, "/deliverables/", map[string]any{
		"title":        "Quarterly Risk Review",
		"workstreamId": "1",
		"ownerId":      "1",
		"priority":     "Medium",
		"startDate":    "2026-09-01",
		"dueDate":      "2026-09-30",
	})
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)

	resp = f.request(t, stdhttp.MethodGet, "/metrics", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)

	mutations, ok := data["mutations"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, mutations)

	requests, ok := data["requests"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, requests)
}

func TestDashboardView(t *testing.T) {
	f := newAPIFixture(t)
	f.loginAs(t, "1")

	resp := f.request(t, stdhttp.MethodGet, "/views/dashboard", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)

	stats, ok := data["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), stats["totalDeliverables"])
	assert.Equal(t, float64(1), stats["completed"])
	assert.Equal(t, float64(25), stats["completionRate"])
}

func TestSessionEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.request(t, stdhttp.MethodGet, "/session/", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeData(t, resp))

	resp = f.request(t, stdhttp.MethodPost, "/session/login", map[string]any{"staffId": "1"})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	sess := decodeData(t, resp)
	assert.Equal(t, "Sarah Johnson", sess["name"])

	resp = f.request(t, stdhttp.MethodPost, "/session/logout", nil)
	require.Equal(t, stdhttp.StatusNoContent, resp.StatusCode)

	resp = f.request(t, stdhttp.MethodGet, "/session/", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeData(t, resp))
}
