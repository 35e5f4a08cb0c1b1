package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/businessthis/finplan/internal/api"
	"github.com/businessthis/finplan/internal/cache"
	"github.com/businessthis/finplan/internal/calculation"
	"github.com/businessthis/finplan/internal/config"
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/internal/logging"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	rules, err := config.NewRulesParser().LoadFromFile(rulesFixture)
	require.NoError(t, err)

	engine := calculation.NewPlanningEngineWithRules(*rules)
	engine.SetLogger(logging.ForEngine(logger))
	handler := api.NewHandler(engine, cache.NewLRUCache[[]byte](32, time.Minute), logger)

	srv := httptest.NewServer(api.NewRouter(handler, logger))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAPIServesVersionedRules(t *testing.T) {
	srv := newAPIServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status api.HealthStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "2025.1", status.RulesVersion)
	assert.Equal(t, 2025, status.TaxYear)
}

func TestAPITaxEstimateIsMemoized(t *testing.T) {
	srv := newAPIServer(t)
	body := `{"income": 108000, "filing_status": "married_joint"}`

	first := post(t, srv, "/v1/tax-estimate", body)
	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))
	assert.NotEmpty(t, first.Header.Get(api.RequestIDHeader))

	var res domain.TaxResult
	require.NoError(t, json.NewDecoder(first.Body).Decode(&res))
	assert.True(t, res.FinalTax.Equal(decimal.NewFromInt(8883)), "final %s", res.FinalTax)

	second := post(t, srv, "/v1/tax-estimate", body)
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
}

func TestAPIValidationErrors(t *testing.T) {
	srv := newAPIServer(t)

	resp := post(t, srv, "/v1/what-if", `{"base_income": 5000, "base_expenses": -1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Contains(t, e.Message, "base_expenses")
}
