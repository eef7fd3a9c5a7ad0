package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"costmap/server/config"
	"costmap/server/internal/citydata"
	"costmap/server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *observability.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	metrics := observability.NewMetrics()

	store, err := citydata.NewStore(config.SupportedCities, citydata.WithMissHook(NewMissHook(logger, metrics)))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173"}

	handler := NewHandler(store, logger, metrics, 60000)
	return NewRouter(cfg, handler, metrics, logger), metrics
}

func get(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(len(config.SupportedCities)), body["cities"])
}

func TestRequestIDIsPropagated(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestGetCities(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name     string
		url      string
		wantCode int
		wantIDs  []string
	}{
		{"all", "/api/cities", http.StatusOK, nil},
		{"by state", "/api/cities?state=maharashtra", http.StatusOK, []string{"mumbai", "pune"}},
		{"inclusive min", "/api/cities?min_index=110", http.StatusOK, []string{"mumbai", "delhi", "bangalore"}},
		{"range", "/api/cities?min_index=80&max_index=90", http.StatusOK, []string{"chennai", "kolkata", "ahmedabad"}},
		{"bad number", "/api/cities?min_index=abc", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.url)
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}

			var cities []map[string]interface{}
			decode(t, w, &cities)
			if tt.wantIDs == nil {
				assert.Len(t, cities, len(config.SupportedCities))
				return
			}
			ids := make([]string, len(cities))
			for i, c := range cities {
				ids[i] = c["id"].(string)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetCity(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/cities/mumbai")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		City struct {
			ID       string  `json:"id"`
			ColIndex float64 `json:"col_index"`
			Color    string  `json:"color"`
		} `json:"city"`
		NationalAverage struct {
			ColIndex float64 `json:"col_index"`
		} `json:"national_average"`
		Breakdown []struct {
			Category string        `json:"category"`
			Items    []interface{} `json:"items"`
		} `json:"breakdown"`
	}
	decode(t, w, &body)
	assert.Equal(t, "mumbai", body.City.ID)
	assert.Equal(t, float64(120), body.City.ColIndex)
	assert.Equal(t, "#FF0000", body.City.Color)
	assert.Equal(t, float64(100), body.NationalAverage.ColIndex)
	require.Len(t, body.Breakdown, 5)
	assert.Equal(t, "housing", body.Breakdown[0].Category)
	assert.Len(t, body.Breakdown[0].Items, 3)

	w = get(t, router, "/api/cities/Mumbai")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStates(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/states")
	require.Equal(t, http.StatusOK, w.Code)
	var states []citydata.State
	decode(t, w, &states)
	assert.Len(t, states, 9)
	assert.Equal(t, "Maharashtra", states[0].Name)
	assert.Equal(t, []string{"mumbai", "pune"}, states[0].Cities)

	w = get(t, router, "/api/states/Tamil%20Nadu")
	require.Equal(t, http.StatusOK, w.Code)
	var state citydata.State
	decode(t, w, &state)
	assert.Equal(t, []string{"chennai"}, state.Cities)

	w = get(t, router, "/api/states/Atlantis")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMap(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/map")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		View struct {
			Center    []float64 `json:"center"`
			ZoomLevel int       `json:"zoom_level"`
		} `json:"view"`
		Legend  []interface{} `json:"legend"`
		Markers struct {
			Type     string `json:"type"`
			Features []struct {
				Properties map[string]interface{} `json:"properties"`
			} `json:"features"`
		} `json:"markers"`
	}
	decode(t, w, &body)
	assert.Len(t, body.View.Center, 2)
	assert.Len(t, body.Legend, 6)
	assert.Equal(t, "FeatureCollection", body.Markers.Type)
	require.Len(t, body.Markers.Features, len(config.SupportedCities))
	assert.Equal(t, "mumbai", body.Markers.Features[0].Properties["id"])
	assert.Equal(t, "#FF0000", body.Markers.Features[0].Properties["color"])
}

func TestCompare(t *testing.T) {
	router, metrics := setupRouter(t)

	w := get(t, router, "/api/compare?from=kolkata&to=mumbai&salary=50,000")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Salary struct {
			EquivalentSalary float64 `json:"equivalent_salary"`
			Percentage       string  `json:"percentage"`
			NeedsMore        bool    `json:"needs_more"`
			Summary          string  `json:"summary"`
		} `json:"salary"`
		Ratio      float64       `json:"ratio"`
		DistanceKm float64       `json:"distance_km"`
		Breakdown  []interface{} `json:"breakdown"`
	}
	decode(t, w, &body)
	assert.InDelta(t, 75000, body.Salary.EquivalentSalary, 1e-6)
	assert.Equal(t, "+50.0%", body.Salary.Percentage)
	assert.True(t, body.Salary.NeedsMore)
	assert.Contains(t, body.Salary.Summary, "in Kolkata")
	assert.InDelta(t, 1.5, body.Ratio, 1e-9)
	assert.Greater(t, body.DistanceKm, 1500.0)
	assert.Len(t, body.Breakdown, 5)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Comparisons))
}

func TestCompareDefaultSalary(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/compare?from=mumbai&to=kolkata")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Salary struct {
			Salary           float64 `json:"salary"`
			EquivalentSalary float64 `json:"equivalent_salary"`
			NeedsMore        bool    `json:"needs_more"`
		} `json:"salary"`
	}
	decode(t, w, &body)
	assert.Equal(t, float64(60000), body.Salary.Salary)
	assert.InDelta(t, 40000, body.Salary.EquivalentSalary, 1e-6)
	assert.False(t, body.Salary.NeedsMore)
}

func TestCompareErrors(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name     string
		url      string
		wantCode int
	}{
		{"missing to", "/api/compare?from=mumbai", http.StatusBadRequest},
		{"same city", "/api/compare?from=pune&to=pune", http.StatusBadRequest},
		{"bad salary", "/api/compare?from=pune&to=delhi&salary=abc", http.StatusBadRequest},
		{"negative salary", "/api/compare?from=pune&to=delhi&salary=-10", http.StatusBadRequest},
		{"zero salary", "/api/compare?from=pune&to=delhi&salary=0", http.StatusBadRequest},
		{"unknown from", "/api/compare?from=goa&to=delhi", http.StatusNotFound},
		{"unknown to", "/api/compare?from=delhi&to=goa", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.url)
			assert.Equal(t, tt.wantCode, w.Code)

			var body map[string]string
			decode(t, w, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetPurchasingPower(t *testing.T) {
	router, _ := setupRouter(t)

	w := get(t, router, "/api/purchasing-power?city=lucknow&salary=70000")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Report struct {
			RelativePower float64 `json:"relative_power"`
			Band          string  `json:"band"`
			Summary       string  `json:"summary"`
		} `json:"report"`
		AdjustedSalary  float64 `json:"adjusted_salary"`
		FormattedSalary string  `json:"formatted_salary"`
	}
	decode(t, w, &body)
	assert.InDelta(t, 10000.0/70, body.Report.RelativePower, 1e-9)
	assert.Equal(t, "much-stronger", body.Report.Band)
	assert.Contains(t, body.Report.Summary, "further than the national average")
	assert.InDelta(t, 100000, body.AdjustedSalary, 1e-6)
	assert.Contains(t, body.FormattedSalary, "₹")

	w = get(t, router, "/api/purchasing-power?city=goa")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, router, "/api/purchasing-power")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRatio(t *testing.T) {
	router, metrics := setupRouter(t)

	tests := []struct {
		name         string
		url          string
		wantRatio    float64
		wantFallback bool
	}{
		{"known cities", "/api/ratio?from=mumbai&to=kolkata", 1.5, false},
		{"unknown from", "/api/ratio?from=goa&to=kolkata", 1.0, true},
		{"unknown to", "/api/ratio?from=mumbai&to=", 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.url)
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Ratio    float64 `json:"ratio"`
				Fallback bool    `json:"fallback"`
			}
			decode(t, w, &body)
			assert.InDelta(t, tt.wantRatio, body.Ratio, 1e-9)
			assert.Equal(t, tt.wantFallback, body.Fallback)
		})
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.LookupMisses.WithLabelValues("ratio")))
}

func TestMetricsEndpoint(t *testing.T) {
	router, metrics := setupRouter(t)

	get(t, router, "/api/health")
	w := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "costmap_http_requests_total")
	assert.Contains(t, w.Body.String(), "costmap_cities_loaded 10")
	assert.Equal(t, float64(len(config.SupportedCities)), testutil.ToFloat64(metrics.Cities))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Requests.WithLabelValues("/api/health", http.MethodGet, "200")))
}

func TestCORS(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"65000", 65000, false},
		{"1,20,000", 120000, false},
		{"₹ 45,000", 45000, false},
		{"1500.50", 1500.50, false},
		{"0", 0, true},
		{"-100", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
