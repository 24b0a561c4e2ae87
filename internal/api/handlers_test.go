package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cigo/compound-calculator/internal/calculation"
	"github.com/cigo/compound-calculator/internal/config"
)

func testRouter() http.Handler {
	h := NewHandler(calculation.NewEngine())
	return NewRouter(h, config.ServerConfig{
		AllowedOrigins: []string{"http://localhost:8080"},
		DefaultLocale:  "en-US",
	})
}

func postJSON(t *testing.T, router http.Handler, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculate(t *testing.T) {
	router := testRouter()
	rec := postJSON(t, router, "/api/calculate", CalculateRequest{
		Principal:             "10,000",
		AnnualRatePercent:     "5",
		Years:                 "10",
		CompoundsPerYear:      "12",
		ContributionAmount:    "0",
		ContributionFrequency: "monthly",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "en-US", resp.Locale)
	assert.Equal(t, "16,470.09", resp.Summary.FinalAmount)
	assert.Equal(t, "10,000.00", resp.Summary.TotalContributions)
	assert.Len(t, resp.Result.Rows, 10)
	for _, row := range resp.Result.Rows {
		assert.False(t, row.IsPartial)
	}
}

func TestCalculateLocalized(t *testing.T) {
	router := testRouter()
	rec := postJSON(t, router, "/api/calculate", CalculateRequest{
		Principal:             "10.000",
		AnnualRatePercent:     "5",
		Years:                 "10",
		CompoundsPerYear:      "12",
		ContributionFrequency: "monthly",
	}, map[string]string{"Accept-Language": "de-DE,de;q=0.9"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "de-DE", resp.Locale)
	assert.Equal(t, "16.470,09", resp.Summary.FinalAmount)
}

func TestCalculateUsesConfiguredDefaultLocale(t *testing.T) {
	h := NewHandler(calculation.NewEngine())
	router := NewRouter(h, config.ServerConfig{DefaultLocale: "de-DE"})

	rec := postJSON(t, router, "/api/calculate", CalculateRequest{
		Principal:         "1000",
		AnnualRatePercent: "5",
		Years:             "1",
		CompoundsPerYear:  "12",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "de-DE", resp.Locale)
}

func TestCalculateEmptyAmountFieldsDefaultToZero(t *testing.T) {
	router := testRouter()
	rec := postJSON(t, router, "/api/calculate", CalculateRequest{
		AnnualRatePercent: "5",
		Years:             "2",
		CompoundsPerYear:  "12",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.FinalAmount.IsZero())
	assert.Len(t, resp.Result.Rows, 2)
}

func TestCalculateFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		request CalculateRequest
		field   string
	}{
		{
			name: "missing years",
			request: CalculateRequest{
				Principal:         "1000",
				AnnualRatePercent: "5",
				CompoundsPerYear:  "12",
			},
			field: "years",
		},
		{
			name: "non-numeric years",
			request: CalculateRequest{
				Principal:         "1000",
				AnnualRatePercent: "5",
				Years:             "ten",
				CompoundsPerYear:  "12",
			},
			field: "years",
		},
		{
			name: "zero compounds",
			request: CalculateRequest{
				Principal:         "1000",
				AnnualRatePercent: "5",
				Years:             "10",
				CompoundsPerYear:  "0",
			},
			field: "compounds_per_year",
		},
		{
			name: "missing rate",
			request: CalculateRequest{
				Principal:        "1000",
				Years:            "10",
				CompoundsPerYear: "12",
			},
			field: "annual_rate_percent",
		},
		{
			name: "negative principal",
			request: CalculateRequest{
				Principal:         "-50",
				AnnualRatePercent: "5",
				Years:             "10",
				CompoundsPerYear:  "12",
			},
			field: "principal",
		},
		{
			name: "unknown frequency",
			request: CalculateRequest{
				Principal:             "1000",
				AnnualRatePercent:     "5",
				Years:                 "10",
				CompoundsPerYear:      "12",
				ContributionFrequency: "weekly",
			},
			field: "contribution_frequency",
		},
	}

	router := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/api/calculate", tt.request, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Errors)
			found := false
			for _, e := range resp.Errors {
				if e.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected an error naming field %q, got %+v", tt.field, resp.Errors)
		})
	}
}

func TestCalculateInvalidBody(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChart(t *testing.T) {
	router := testRouter()
	rec := postJSON(t, router, "/api/chart", CalculateRequest{
		Principal:             "10000",
		AnnualRatePercent:     "5",
		Years:                 "10",
		CompoundsPerYear:      "12",
		ContributionFrequency: "monthly",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Equal(t, 10, bytes.Count(rec.Body.Bytes(), []byte("<circle")))
}

func TestFrequencies(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/frequencies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var freqs []FrequencyDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &freqs))
	require.Len(t, freqs, 2)
	assert.Equal(t, "monthly", freqs[0].Value)
	assert.Equal(t, "annual", freqs[1].Value)
}

func TestHealthz(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
