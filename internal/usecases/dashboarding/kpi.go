package dashboarding

import (
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// SummarizeCampaigns reduz a lista de campanhas aos KPIs do cabeçalho do
// dashboard. Função pura e determinística: é recalculada por inteiro a cada
// commit, nunca ajustada incrementalmente, porque campanhas podem aparecer e
// desaparecer entre buscas.
func SummarizeCampaigns(records []domain.CampaignRecord) domain.KpiSummary {
	summary := domain.KpiSummary{}

	if len(records) == 0 {
		return summary
	}

	for _, record := range records {
		summary.TotalSpend += record.Spend
		summary.TotalRevenue += record.Revenue
		summary.AvgRoas += record.Roas

		if record.IsCritical() {
			summary.CriticalCount++
		}
	}

	summary.AvgRoas = summary.AvgRoas / float64(len(records))

	return summary
}
