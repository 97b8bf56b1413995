package domain

// Tipos de transporte da API de analytics de campanhas. São convertidos para
// o domínio interno pelas funções Factory do integrador; nada aqui vaza para
// os usecases.

// CampaignRow é uma linha do snapshot mais recente por plataforma.
type CampaignRow struct {
	Campaign    string  `json:"campaign"`
	Roas        float64 `json:"roas"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPA         float64 `json:"cpa"`
}

// SeriesRow é uma observação diária da série histórica de ROAS.
type SeriesRow struct {
	Date     string  `json:"date"`
	Campaign string  `json:"campaign"`
	Roas     float64 `json:"roas"`
}

// FilterOptionsData são as listas de opções dos filtros.
type FilterOptionsData struct {
	Platforms  []string `json:"platforms"`
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
}

// AlertRow é um alerta persistido no log da API.
type AlertRow struct {
	Campaign       string `json:"campaign"`
	Issue          string `json:"issue"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
	Timestamp      string `json:"timestamp"`
	Status         string `json:"status"`
}

// ToolCallRow é uma entrada do rastro de ferramentas de uma análise.
type ToolCallRow struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// AnalyzeRequest é o corpo do POST /api/analyze. Campos nulos significam
// análise sem restrição naquela dimensão.
type AnalyzeRequest struct {
	Platform *string `json:"platform"`
	Industry *string `json:"industry"`
	Country  *string `json:"country"`
}

// AnalysisResponse é a resposta estruturada de uma execução do agente.
type AnalysisResponse struct {
	OverallHealth string        `json:"overall_health"`
	AlertsCount   int           `json:"alerts_count"`
	RowsAnalysed  int           `json:"rows_analysed"`
	ToolCallsLog  []ToolCallRow `json:"tool_calls_log"`
	Alerts        []AlertRow    `json:"alerts"`
	Report        string        `json:"report"`
	Summary       string        `json:"summary"`
}
