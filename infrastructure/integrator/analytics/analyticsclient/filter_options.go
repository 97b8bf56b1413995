package analyticsclient

import (
	"context"

	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
)

// ResponseFilterOptions é o envelope de GET /api/campaigns/filters.
type ResponseFilterOptions struct {
	Status  string                            `json:"status"`
	Filters analyticsdomain.FilterOptionsData `json:"filters"`
}

// GetFilterOptions busca as listas de opções dos dropdowns de filtro.
func (c *AnalyticsClient) GetFilterOptions(ctx context.Context) (*analyticsdomain.FilterOptionsData, error) {
	var response ResponseFilterOptions
	if err := c.get(ctx, "/api/campaigns/filters", nil, &response); err != nil {
		return nil, err
	}

	return &response.Filters, nil
}
