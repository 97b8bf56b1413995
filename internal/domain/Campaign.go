package domain

// CriticalRoasThreshold é o limite de saúde de uma campanha: abaixo dele a
// campanha entra na contagem de "precisa de atenção". O valor limite (1.5)
// NÃO é considerado crítico, a comparação é estrita.
const CriticalRoasThreshold = 1.5

// CampaignRecord representa o snapshot de performance mais recente de uma
// plataforma de anúncios. Imutável depois de recebido: cada busca substitui a
// coleção inteira, nunca altera registros individuais.
type CampaignRecord struct {
	Campaign    string  `json:"campaign"`
	Roas        float64 `json:"roas"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc,omitempty"`
	CPA         float64 `json:"cpa,omitempty"`
}

// KpiSummary contém os KPIs agregados exibidos no cabeçalho do dashboard.
// Derivado, recalculado por inteiro sempre que a lista de campanhas muda.
type KpiSummary struct {
	TotalSpend    float64 `json:"total_spend"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRoas       float64 `json:"avg_roas"`
	CriticalCount int     `json:"critical_count"`
}

// IsCritical indica se o registro está abaixo do limite de saúde de ROAS.
func (c CampaignRecord) IsCritical() bool {
	return c.Roas < CriticalRoasThreshold
}
