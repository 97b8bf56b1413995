package analyticsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
)

// RunAnalysis dispara a execução do agente de análise com os filtros
// informados e aguarda a resposta estruturada. A chamada usa o cliente sem
// timeout: a duração é controlada pelo servidor.
func (c *AnalyticsClient) RunAnalysis(ctx context.Context, request analyticsdomain.AnalyzeRequest) (*analyticsdomain.AnalysisResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a requisição de análise")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/analyze", nil), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.analysisClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição de análise")
	}

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response analyticsdomain.AnalysisResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	return &response, nil
}
