package handlers_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
	"github.com/xavierca1/imobi/internal/infra/http/handlers"
	"github.com/xavierca1/imobi/internal/usecase"
)

const webhookSecret = "segredo-webhook"

type testDeps struct {
	dash     *MockDashboardService
	repo     *MockFollowUpRepository
	create   *MockCreateFollowUp
	complete *MockCompleteFollowUp
	source   *MockSnapshotProvider
	handler  http.Handler
}

func newTestRouter() *testDeps {
	return newTestRouterWith(nil)
}

func newTestRouterWith(configure func(*handlers.Router)) *testDeps {
	d := &testDeps{
		dash:     new(MockDashboardService),
		repo:     new(MockFollowUpRepository),
		create:   new(MockCreateFollowUp),
		complete: new(MockCompleteFollowUp),
		source:   new(MockSnapshotProvider),
	}
	logger := zap.NewNop()
	router := handlers.Router{
		AllowedOrigins: []string{"http://localhost:5173"},
		Dashboard:      handlers.NewDashboardHandler(d.dash),
		FollowUps:      handlers.NewFollowUpHandler(d.repo, d.create, d.complete, logger),
		Collections:    handlers.NewCollectionsHandler(d.source, logger),
		Commission:     handlers.NewCommissionHandler(),
		Webhook:        handlers.NewWhatsAppWebhookHandler(webhookSecret, "verifica", logger),
	}
	if configure != nil {
		configure(&router)
	}
	d.handler = router.Handler()
	return d
}

func (d *testDeps) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAPIRequiresTenant(t *testing.T) {
	d := newTestRouter()

	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TENANT_REQUIRED", decodeError(t, rec).Error)
	d.dash.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestGetDashboard(t *testing.T) {
	d := newTestRouter()
	view := dashboard.Build(dashboard.Snapshot{}, time.Date(2026, 5, 20, 14, 0, 0, 0, time.UTC))
	view.FollowUpsError = dashboard.LoadFollowUpsMessage
	d.dash.On("Execute", mock.Anything, "tenant-1").Return(view, nil)

	rec := d.do(http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "metrics")
	assert.Contains(t, body, "pendencies")
	assert.JSONEq(t, `"Erro ao carregar lembretes"`, string(body["follow_ups_error"]))
}

func TestGetPendencies(t *testing.T) {
	d := newTestRouter()
	view := dashboard.View{Pendencies: dashboard.Pendencies{TotalUrgent: 3}}
	d.dash.On("Execute", mock.Anything, "tenant-1").Return(view, nil)

	rec := d.do(http.MethodGet, "/api/dashboard/pendencies", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["total_urgent"])
	assert.NotContains(t, body, "follow_ups_error")
}

func TestGetDashboardTechnicalError(t *testing.T) {
	d := newTestRouter()
	d.dash.On("Execute", mock.Anything, "tenant-1").Return(dashboard.View{},
		&usecase.TechnicalError{Code: "SNAPSHOT_LOAD_FAILED", Message: "erro ao carregar dados do painel", Err: errors.New("pq: timeout")})

	rec := d.do(http.MethodGet, "/api/dashboard", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "SNAPSHOT_LOAD_FAILED", body.Error)
	assert.NotContains(t, body.Message, "pq: timeout")
}

func TestListFollowUps(t *testing.T) {
	d := newTestRouter()
	due := time.Date(2026, 5, 20, 16, 0, 0, 0, time.UTC)
	d.repo.On("ListByStatus", mock.Anything, "tenant-1", entity.FollowUpStatusPending).Return([]entity.FollowUp{
		{ID: "f1", TenantID: "tenant-1", LeadID: "l1", DueAt: due, Type: entity.FollowUpTypeCall, Status: entity.FollowUpStatusPending},
	}, nil)

	rec := d.do(http.MethodGet, "/api/follow-ups?status=pending", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "l1", items[0]["leadId"])
	assert.Equal(t, "2026-05-20T16:00:00Z", items[0]["dueAt"])
	assert.Nil(t, items[0]["completedAt"])
}

func TestListFollowUpsInvalidStatus(t *testing.T) {
	d := newTestRouter()

	rec := d.do(http.MethodGet, "/api/follow-ups?status=late", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STATUS", decodeError(t, rec).Error)
}

func TestCreateFollowUp(t *testing.T) {
	d := newTestRouter()
	created := &entity.FollowUp{ID: "f9", TenantID: "tenant-1", LeadID: "l1", Status: entity.FollowUpStatusPending}
	d.create.On("Execute", mock.Anything, mock.MatchedBy(func(in usecase.CreateFollowUpInput) bool {
		return in.TenantID == "tenant-1" && in.LeadID == "l1" && in.Type == "call"
	})).Return(created, nil)

	rec := d.do(http.MethodPost, "/api/follow-ups", `{"lead_id":"l1","due_at":"2026-05-21T10:00:00Z","type":"call"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"f9"`)
}

func TestCreateFollowUpValidationError(t *testing.T) {
	d := newTestRouter()
	d.create.On("Execute", mock.Anything, mock.Anything).Return(nil,
		usecase.ValidationErrors{{Field: "due_at", Message: "is required"}})

	rec := d.do(http.MethodPost, "/api/follow-ups", `{"lead_id":"l1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "due_at", body.Details[0].Field)
}

func TestCreateFollowUpInvalidJSON(t *testing.T) {
	d := newTestRouter()

	rec := d.do(http.MethodPost, "/api/follow-ups", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_JSON", decodeError(t, rec).Error)
}

func TestCompleteFollowUpErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"não encontrado", &usecase.DomainError{Code: "FOLLOWUP_NOT_FOUND", Message: "lembrete não encontrado"}, http.StatusNotFound, "FOLLOWUP_NOT_FOUND"},
		{"já concluído", &usecase.DomainError{Code: "FOLLOWUP_NOT_PENDING", Message: "lembrete não está pendente"}, http.StatusConflict, "FOLLOWUP_NOT_PENDING"},
		{"banco fora", &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao concluir lembrete"}, http.StatusInternalServerError, "DATABASE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestRouter()
			d.complete.On("Execute", mock.Anything, "tenant-1", "f1").Return(nil, tt.err)

			rec := d.do(http.MethodPost, "/api/follow-ups/f1/complete", "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Error)
		})
	}
}

func TestCompleteFollowUp(t *testing.T) {
	d := newTestRouter()
	done := &entity.FollowUp{ID: "f1", Status: entity.FollowUpStatusCompleted}
	d.complete.On("Execute", mock.Anything, "tenant-1", "f1").Return(done, nil)

	rec := d.do(http.MethodPost, "/api/follow-ups/f1/complete", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestListCollections(t *testing.T) {
	d := newTestRouter()
	d.source.On("ListLeads", mock.Anything, "tenant-1").Return([]entity.Lead{{ID: "l1", Name: "Ana"}}, nil)
	d.source.On("ListVisits", mock.Anything, "tenant-1").Return(nil, nil)
	d.source.On("ListProperties", mock.Anything, "tenant-1").Return(nil, errors.New("conexão recusada"))

	rec := d.do(http.MethodGet, "/api/leads", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)

	rec = d.do(http.MethodGet, "/api/visits", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = d.do(http.MethodGet, "/api/properties", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCalculateCommission(t *testing.T) {
	d := newTestRouter()

	rec := d.do(http.MethodPost, "/api/commissions/calculate",
		`{"deal_value_cents":50000000,"rate_percent":6,"broker_share_percent":40,"tax_percent":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"gross_cents":3000000,"tax_cents":300000,"net_cents":2700000,"broker_cents":1080000,"agency_cents":1620000}`,
		rec.Body.String())

	rec = d.do(http.MethodPost, "/api/commissions/calculate", `{"deal_value_cents":0,"rate_percent":6}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func commissionRequest(remoteAddr, forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/commissions/calculate",
		strings.NewReader(`{"deal_value_cents":100000,"rate_percent":5}`))
	req.Header.Set("X-Tenant-ID", "tenant-1")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = remoteAddr
	return req
}

func TestCommissionRateLimitIgnoresForwardedFor(t *testing.T) {
	limiter := handlers.NewRateLimiter(1, time.Minute)
	first := newTestRouterWith(func(r *handlers.Router) { r.CommissionLimiter = limiter })
	second := newTestRouterWith(func(r *handlers.Router) { r.CommissionLimiter = limiter })

	rec := httptest.NewRecorder()
	first.handler.ServeHTTP(rec, commissionRequest("203.0.113.7:5000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	second.handler.ServeHTTP(rec, commissionRequest("203.0.113.7:5001", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, rec).Error)
}

func TestCommissionRateLimitTrustsProxyWhenConfigured(t *testing.T) {
	d := newTestRouterWith(func(r *handlers.Router) {
		r.TrustProxyHeaders = true
		r.CommissionLimiter = handlers.NewRateLimiter(1, time.Minute)
	})

	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, commissionRequest("10.0.0.2:5000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	d.handler.ServeHTTP(rec, commissionRequest("10.0.0.2:5000", "198.51.100.2"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestWhatsAppWebhookSignature(t *testing.T) {
	body := `{"object":"whatsapp_business_account","entry":[{"id":"1","changes":[{"field":"messages","value":{"statuses":[{"id":"wamid.1","status":"delivered"}]}}]}]}`
	d := newTestRouter()

	post := func(signature string) int {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(body))
		if signature != "" {
			req.Header.Set(handlers.SignatureHeader, signature)
		}
		rec := httptest.NewRecorder()
		d.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post(sign(body)))
	assert.Equal(t, http.StatusUnauthorized, post(""))
	assert.Equal(t, http.StatusUnauthorized, post("sha256=00ff"))
	assert.Equal(t, http.StatusUnauthorized, post(sign(body+" ")))
}

func TestWhatsAppWebhookVerify(t *testing.T) {
	d := newTestRouter()

	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=verifica&hub.challenge=42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())

	rec = httptest.NewRecorder()
	d.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=errado&hub.challenge=42", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidSignatureWithoutSecret(t *testing.T) {
	assert.False(t, handlers.ValidSignature("", []byte("{}"), sign("{}")))
}
