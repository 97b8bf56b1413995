package analyticsclient

import (
	"context"
	"net/url"

	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
)

// ResponseLatestCampaigns é o envelope de GET /api/campaigns/latest.
type ResponseLatestCampaigns struct {
	Status string                        `json:"status"`
	Data   []analyticsdomain.CampaignRow `json:"data"`
}

// ResponseCampaignSeries é o envelope de GET /api/campaigns.
type ResponseCampaignSeries struct {
	Status    string                      `json:"status"`
	Count     int                         `json:"count"`
	Campaigns []string                    `json:"campaigns"`
	Data      []analyticsdomain.SeriesRow `json:"data"`
}

// GetLatestCampaigns busca o snapshot mais recente por plataforma, restrito
// pelos parâmetros de filtro informados. Chaves ausentes significam "sem
// restrição" para o servidor.
func (c *AnalyticsClient) GetLatestCampaigns(ctx context.Context, params url.Values) ([]analyticsdomain.CampaignRow, error) {
	var response ResponseLatestCampaigns
	if err := c.get(ctx, "/api/campaigns/latest", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetCampaignSeries busca a série histórica diária de ROAS por campanha,
// restrita pelos mesmos parâmetros de filtro do snapshot.
func (c *AnalyticsClient) GetCampaignSeries(ctx context.Context, params url.Values) ([]analyticsdomain.SeriesRow, error) {
	var response ResponseCampaignSeries
	if err := c.get(ctx, "/api/campaigns", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
