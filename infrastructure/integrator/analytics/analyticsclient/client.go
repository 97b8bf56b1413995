package analyticsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

type Client interface {
	GetLatestCampaigns(ctx context.Context, params url.Values) ([]analyticsdomain.CampaignRow, error)
	GetCampaignSeries(ctx context.Context, params url.Values) ([]analyticsdomain.SeriesRow, error)
	GetFilterOptions(ctx context.Context) (*analyticsdomain.FilterOptionsData, error)
	RunAnalysis(ctx context.Context, request analyticsdomain.AnalyzeRequest) (*analyticsdomain.AnalysisResponse, error)
	GetAlerts(ctx context.Context) ([]analyticsdomain.AlertRow, error)
	ClearAlerts(ctx context.Context) error
}

// APIError é um erro estruturado reportado pela API de analytics em uma
// resposta com transporte bem sucedido (envelope {"detail": "..."}).
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("analytics API respondeu %d: %s", e.StatusCode, e.Detail)
}

type AnalyticsClient struct {
	cfg *config.Config

	httpClient *http.Client
	// A duração de uma análise é controlada pelo servidor; nenhum timeout é
	// imposto do lado do cliente
	analysisClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AnalyticsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Analytics.RequestTimeout(),
		},
		analysisClient: &http.Client{},
	}
}

// endpoint monta a URL final de um caminho da API, com query opcional.
func (c *AnalyticsClient) endpoint(path string, params url.Values) string {
	u := fmt.Sprintf("%s%s", c.cfg.Analytics.BaseURL, path)
	if len(params) > 0 {
		u = u + "?" + params.Encode()
	}
	return u
}

// HandleResponse lê o corpo e converte respostas não-2xx no erro
// estruturado da API quando o envelope {"detail"} está presente.
func (c *AnalyticsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: envelope.Detail}
	}

	return nil, &APIError{StatusCode: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}
}

func (c *AnalyticsClient) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao fazer a requisição para %s", path)
	}

	body, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}
