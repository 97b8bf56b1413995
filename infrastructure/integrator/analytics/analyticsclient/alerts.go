package analyticsclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
)

// ResponseAlerts é o envelope de GET /api/alerts.
type ResponseAlerts struct {
	Status string                     `json:"status"`
	Count  int                        `json:"count"`
	Alerts []analyticsdomain.AlertRow `json:"alerts"`
}

// GetAlerts busca o log de alertas, já ordenado do mais recente para o mais
// antigo pelo servidor.
func (c *AnalyticsClient) GetAlerts(ctx context.Context) ([]analyticsdomain.AlertRow, error) {
	var response ResponseAlerts
	if err := c.get(ctx, "/api/alerts", nil, &response); err != nil {
		return nil, err
	}

	return response.Alerts, nil
}

// ClearAlerts apaga todos os alertas no servidor.
func (c *AnalyticsClient) ClearAlerts(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint("/api/alerts", nil), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}

	if _, err := c.HandleResponse(resp); err != nil {
		return err
	}

	return nil
}
