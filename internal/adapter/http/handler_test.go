package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/port"
	"srportal/internal/core/port/mocks"
)

type fixture struct {
	catalog   *mocks.MockCatalogUseCase
	baselines *mocks.MockBaselineUseCase
	pricing   *mocks.MockPricingUseCase
	imports   *mocks.MockImportUseCase
	metrics   *Metrics
	handler   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog:   mocks.NewMockCatalogUseCase(t),
		baselines: mocks.NewMockBaselineUseCase(t),
		pricing:   mocks.NewMockPricingUseCase(t),
		imports:   mocks.NewMockImportUseCase(t),
		metrics:   NewMetrics(),
	}
	h := NewHandler(Services{
		Catalog:   f.catalog,
		Baselines: f.baselines,
		Pricing:   f.pricing,
		Imports:   f.imports,
	}, f.metrics, 1<<20, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.handler = h.Router()
	return f
}

func (f *fixture) do(method, target string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var out errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsUseRoutePatterns(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().GetClient(mock.Anything, int64(7)).Return(nil, port.ErrNotFound)

	f.do(http.MethodGet, "/api/v1/clients/7", nil)
	f.metrics.RecordAssignment("applied")
	rec := f.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `srportal_http_requests_total{method="GET",route="/api/v1/clients/{id}",status="404"} 1`)
	assert.Contains(t, body, `srportal_price_assignments_total{result="applied"} 1`)
	assert.NotContains(t, body, `route="/api/v1/clients/7"`)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", port.ErrNotFound, http.StatusNotFound, "not found"},
		{"invalid input", errors.Join(port.ErrInvalidInput, errors.New("name is empty")), http.StatusBadRequest, ""},
		{"client mismatch", port.ErrClientMismatch, http.StatusConflict, port.ErrClientMismatch.Error()},
		{"already exists", port.ErrAlreadyExists, http.StatusConflict, "already exists"},
		{"import invalid", port.ErrImportInvalid, http.StatusUnprocessableEntity, port.ErrImportInvalid.Error()},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.catalog.EXPECT().GetCommercial(mock.Anything, int64(3)).Return(nil, tt.err)

			rec := f.do(http.MethodGet, "/api/v1/commercials/3", nil)

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, resp.Error)
			}
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, `invalid id "abc"`)
}
