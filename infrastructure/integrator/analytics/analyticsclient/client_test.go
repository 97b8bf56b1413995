package analyticsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

func clientForServer(server *httptest.Server) Client {
	return NewClient(&config.Config{
		Analytics: config.Analytics{
			BaseURL:               server.URL,
			RequestTimeoutSeconds: 5,
		},
	})
}

func TestGetLatestCampaigns_FiltrosAtivosViramQuery(t *testing.T) {
	var receivedQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/campaigns/latest", r.URL.Path)
		receivedQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":[{"campaign":"Black Friday","roas":2.4,"spend":1000,"revenue":2400,"conversions":37,"ctr":1.9}]}`))
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("platform", "Meta Ads")

	rows, err := clientForServer(server).GetLatestCampaigns(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Black Friday", rows[0].Campaign)
	assert.InDelta(t, 2.4, rows[0].Roas, 0.0001)

	// Somente o filtro ativo vai na query; os demais ficam ausentes, não vazios
	assert.Equal(t, "Meta Ads", receivedQuery.Get("platform"))
	assert.False(t, receivedQuery.Has("industry"))
	assert.False(t, receivedQuery.Has("country"))
}

func TestGetCampaignSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/campaigns", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","count":2,"campaigns":["A"],"data":[{"date":"2024-06-01","campaign":"A","roas":2.0},{"date":"2024-06-02","campaign":"A","roas":2.2}]}`))
	}))
	defer server.Close()

	rows, err := clientForServer(server).GetCampaignSeries(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-06-01", rows[0].Date)
}

func TestRunAnalysis_FiltrosInativosViramNulos(t *testing.T) {
	var receivedBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&receivedBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"overall_health":"warning","alerts_count":1,"rows_analysed":8,"tool_calls_log":[{"tool":"create_alert","args":{"campaign":"A"}}],"alerts":[{"campaign":"A","issue":"ROAS em queda","severity":"high"}],"summary":"ok"}`))
	}))
	defer server.Close()

	platform := "Meta Ads"
	response, err := clientForServer(server).RunAnalysis(context.Background(), analyticsdomain.AnalyzeRequest{
		Platform: &platform,
	})

	require.NoError(t, err)
	assert.Equal(t, "warning", response.OverallHealth)
	assert.Equal(t, 1, response.AlertsCount)
	require.Len(t, response.ToolCallsLog, 1)
	assert.Equal(t, "create_alert", response.ToolCallsLog[0].Tool)

	assert.Equal(t, "Meta Ads", receivedBody["platform"])
	assert.Nil(t, receivedBody["industry"])
	assert.Nil(t, receivedBody["country"])
}

func TestHandleResponse_EnvelopeDeErroViraAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"Modelo indisponível no momento"}`))
	}))
	defer server.Close()

	_, err := clientForServer(server).GetAlerts(context.Background())

	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Modelo indisponível no momento", apiErr.Detail)
}

func TestHandleResponse_ErroSemEnvelopeUsaStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("stack trace"))
	}))
	defer server.Close()

	_, err := clientForServer(server).GetFilterOptions(context.Background())

	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Detail)
}

func TestClearAlerts(t *testing.T) {
	var receivedMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		require.Equal(t, "/api/alerts", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"All alerts cleared"}`))
	}))
	defer server.Close()

	err := clientForServer(server).ClearAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, receivedMethod)
}
