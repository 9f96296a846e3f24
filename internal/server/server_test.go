package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
)

func testServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{Port: 8080}
	}
	s, err := New(cfg, analyzer.New(nil, nil, nil), nil)
	require.NoError(t, err)
	return s
}

func testResume() map[string]any {
	return map[string]any{
		"contact": map[string]any{
			"name":     "Jane Doe",
			"email":    "jane.doe@gmail.com",
			"phone":    "(555) 123-4567",
			"location": "Austin, TX",
			"linkedin": "https://linkedin.com/in/jane-doe",
		},
		"experience": []map[string]any{
			{
				"title":      "Senior Software Engineer",
				"company":    "Acme",
				"start_date": "Jan 2019",
				"end_date":   "Present",
				"description": "Built a Go API layer serving 40k requests per second\n" +
					"Reduced p99 latency by 45% with staged rollouts",
			},
		},
		"education": []map[string]any{{"degree": "BS Computer Science", "institution": "State"}},
		"skills":    []string{"Go", "Docker", "Kubernetes"},
		"metadata":  map[string]any{"page_count": 1, "word_count": 450, "file_format": "pdf"},
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHealth(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
}

func TestComprehensiveAnalysisEndpoint(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/comprehensive-analysis", map[string]any{
		"resume": testResume(),
		"role":   "software-engineer",
		"level":  "senior",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "software-engineer", data["role"])

	overall, ok := data["overall_score"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, overall, 0.0)
	assert.LessOrEqual(t, overall, 100.0)
}

func TestAnalysisEndpointsRejectMissingResume(t *testing.T) {
	s := testServer(t, nil)

	for _, path := range []string{
		"/comprehensive-analysis",
		"/skills-analysis",
		"/heat-map",
		"/ats-simulation",
		"/ats-simulation/platform/taleo",
	} {
		t.Run(path, func(t *testing.T) {
			rec, env := postJSON(t, s.Handler(), path, map[string]any{"role": "software-engineer"})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Contains(t, env.Error, "resume")
		})
	}
}

func TestMalformedJSONRejected(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/heat-map", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestATSPlatformEndpoint(t *testing.T) {
	s := testServer(t, nil)

	for _, platform := range []string{"taleo", "workday", "greenhouse"} {
		t.Run(platform, func(t *testing.T) {
			rec, env := postJSON(t, s.Handler(), "/ats-simulation/platform/"+platform, map[string]any{
				"resume": testResume(),
			})
			require.Equal(t, http.StatusOK, rec.Code)
			require.True(t, env.Success)

			data, ok := env.Data.(map[string]any)
			require.True(t, ok)
			prob, ok := data["pass_probability"].(float64)
			require.True(t, ok)
			assert.GreaterOrEqual(t, prob, 0.0)
			assert.LessOrEqual(t, prob, 100.0)
		})
	}
}

func TestATSPlatformUnknownRejected(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/ats-simulation/platform/lever", map[string]any{
		"resume": testResume(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "lever")
}

func TestATSSimulationEndpoint(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/ats-simulation", map[string]any{"resume": testResume()})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	platforms, ok := data["platforms"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, platforms, 3)
}

func TestConfidenceIntervalsEndpoint(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/confidence-intervals", map[string]any{
		"samples": map[string]any{
			"overall": map[string]any{"score": 78.0, "sample_size": 30, "measurement_type": "percentage"},
		},
		"confidence_level": 0.95,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	interval, ok := data["overall"].(map[string]any)
	require.True(t, ok)

	lower := interval["lower"].(float64)
	upper := interval["upper"].(float64)
	assert.LessOrEqual(t, lower, 78.0)
	assert.GreaterOrEqual(t, upper, 78.0)
	assert.InDelta(t, 9.0, interval["margin_of_error"].(float64), 1.0)
}

func TestConfidenceIntervalsRequireSamples(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/confidence-intervals", map[string]any{
		"samples": map[string]any{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestSkillsAnalysisEndpoint(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/skills-analysis", map[string]any{
		"resume":   testResume(),
		"keywords": []string{"Go", "Terraform"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	match, ok := data["match"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 50.0, match["match_rate"].(float64), 0.1)
}

func TestHeatMapEndpoint(t *testing.T) {
	s := testServer(t, nil)

	rec, env := postJSON(t, s.Handler(), "/heat-map", map[string]any{
		"resume": testResume(),
		"role":   "software-engineer",
		"level":  "senior",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	sections, ok := data["sections"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, sections, "contact")
	assert.Contains(t, sections, "experience")
}

func TestCORSPreflights(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/comprehensive-analysis", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitHeadersPresent(t *testing.T) {
	s := testServer(t, nil)

	rec, _ := postJSON(t, s.Handler(), "/heat-map", map[string]any{"resume": testResume()})
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestAuthRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := testServer(t, &config.Config{Port: 8080, AuthRequired: true})

	// No token: analysis endpoints are rejected, health is open.
	rec, env := postJSON(t, s.Handler(), "/heat-map", map[string]any{"resume": testResume()})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(healthRec, req)
	assert.Equal(t, http.StatusOK, healthRec.Code)

	// A valid token passes.
	token, err := s.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]any{"resume": testResume()})
	require.NoError(t, err)
	authedReq := httptest.NewRequest(http.MethodPost, "/heat-map", bytes.NewReader(raw))
	authedReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	authedRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(authedRec, authedReq)
	assert.Equal(t, http.StatusOK, authedRec.Code)

	// A garbage token is rejected.
	badReq := httptest.NewRequest(http.MethodPost, "/heat-map", bytes.NewReader(raw))
	badReq.Header.Set("Authorization", "Bearer not-a-token")
	badRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(badRec, badReq)
	assert.Equal(t, http.StatusUnauthorized, badRec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	s := testServer(t, nil)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := s.withRecovery(panicking)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "boom")
}
