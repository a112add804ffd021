package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"nuclear-lcoe/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	lcoeHandler := NewLCOEHandler()
	optimizeHandler := NewOptimizeHandler()
	scheduleHandler := NewScheduleHandler()
	scenarioHandler := NewScenarioHandler()

	api := router.Group("/api/v1")
	api.POST("/lcoe", lcoeHandler.Run)
	api.POST("/lcoe/fuel-breakdown", lcoeHandler.FuelBreakdown)
	api.POST("/frontend/optimize", optimizeHandler.Optimize)
	api.POST("/schedule", scheduleHandler.Schedule)
	api.GET("/scenarios", scenarioHandler.ListScenarios)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRunDefaults(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/lcoe", models.LCOERequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LCOEResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "completed", resp.Status)
	assert.Greater(t, resp.Summary.LCOEUSDPerMWh, 20.0)
	assert.Less(t, resp.Summary.LCOEUSDPerMWh, 300.0)
	assert.Equal(t, 70, resp.Summary.LastOperationYear)
	assert.InDelta(t, 24e9, resp.Summary.CapexUSD, 1e-3)
	assert.Empty(t, resp.Ledger)
}

func TestRunWithLedger(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/lcoe", models.LCOERequest{
		Options: models.RunOptions{IncludeLedger: true},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LCOEResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ledger, 70)
	assert.Equal(t, 1, resp.Ledger[0].Year)
	assert.Equal(t, 0, resp.Ledger[0].OperationalReactors)
	assert.Equal(t, 4, resp.Ledger[10].OperationalReactors)
}

func TestRunInlineOverrides(t *testing.T) {
	router := newRouter()

	base := doJSON(t, router, http.MethodPost, "/api/v1/lcoe", models.LCOERequest{})
	require.Equal(t, http.StatusOK, base.Code)
	var baseResp models.LCOEResponse
	require.NoError(t, json.Unmarshal(base.Body.Bytes(), &baseResp))

	var req models.LCOERequest
	req.Scenario.Costs.RealDiscountRate = 0.08
	w := doJSON(t, router, http.MethodPost, "/api/v1/lcoe", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.LCOEResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// A higher discount rate penalizes the capital-heavy early years.
	assert.Greater(t, resp.Summary.LCOEUSDPerMWh, baseResp.Summary.LCOEUSDPerMWh)
}

func TestRunInvalidScenario(t *testing.T) {
	router := newRouter()

	var req models.LCOERequest
	req.Scenario.Project.NetCapacityFactor = 1.5
	w := doJSON(t, router, http.MethodPost, "/api/v1/lcoe", req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_SCENARIO", resp.Error.Code)
}

func TestRunMalformedJSON(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lcoe", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestRunScenarioFile(t *testing.T) {
	dir := t.TempDir()
	scenario := `
project:
  name: "Two units"
  n_reactors: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two_units.yaml"), []byte(scenario), 0o644))
	t.Setenv("SCENARIO_DIR", dir)
	router := newRouter()

	var req models.LCOERequest
	req.Scenario.ScenarioFile = "two_units"
	w := doJSON(t, router, http.MethodPost, "/api/v1/lcoe", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LCOEResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 12e9, resp.Summary.CapexUSD, 1e-3)

	// Unknown scenario names are a client error.
	req.Scenario.ScenarioFile = "missing"
	w = doJSON(t, router, http.MethodPost, "/api/v1/lcoe", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFuelBreakdown(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/lcoe/fuel-breakdown", models.FuelBreakdownRequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.FuelBreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	require.Len(t, resp.Steps, 10)
	assert.Contains(t, resp.Steps, "SWU")
	assert.Contains(t, resp.Steps, "transport_spent_fuel")
	assert.Greater(t, resp.Steps["U_nat"], 0.0)
}

func TestOptimizeEndpoint(t *testing.T) {
	router := newRouter()

	req := models.OptimizeRequest{
		ProductMassKg:     20000.0,
		XUNat:             0.00711,
		XUProduct:         0.048,
		PriceUNatPerKgUSD: 190.0,
		PriceSWUUSD:       140.0,
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/frontend/optimize", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.XTails, 0.0)
	assert.Less(t, resp.XTails, 0.00711)
	assert.Greater(t, resp.FeedMassKg, req.ProductMassKg)
	assert.Greater(t, resp.TotalUSD, 0.0)
}

func TestOptimizeEndpointInfeasible(t *testing.T) {
	router := newRouter()

	req := models.OptimizeRequest{
		ProductMassKg: 20000.0,
		XUNat:         0.00711,
		XUProduct:     0.0005,
		PriceSWUUSD:   140.0,
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/frontend/optimize", req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INFEASIBLE_FRONT_END", resp.Error.Code)
}

func TestScheduleEndpoint(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/schedule", models.ScheduleRequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 4)
	assert.Equal(t, 1, resp.Entries[0].ConstructionStart)
	assert.Equal(t, 7, resp.Entries[0].ConstructionEnd)
	assert.Equal(t, 70, resp.Entries[3].OperationEnd)
}

func TestListScenarios(t *testing.T) {
	dir := t.TempDir()
	scenario := `
project:
  name: "Listed plant"
  country: "Testland"
  reactor_type: "VVER-1200"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "listed.yaml"), []byte(scenario), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	t.Setenv("SCENARIO_DIR", dir)
	router := newRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Scenarios, 1)
	assert.Equal(t, "listed", resp.Scenarios[0].ID)
	assert.Equal(t, "Listed plant", resp.Scenarios[0].Name)
	assert.Equal(t, "Testland", resp.Scenarios[0].Country)
}

func TestListScenariosMissingDir(t *testing.T) {
	t.Setenv("SCENARIO_DIR", filepath.Join(t.TempDir(), "nope"))
	router := newRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Scenarios)
}
