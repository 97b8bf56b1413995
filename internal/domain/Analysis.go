package domain

// ToolCall é uma entrada opaca do rastro de ferramentas chamadas pelo agente
// de análise. O nome da ferramenta é casado contra uma pequena tabela de
// metadados de exibição; nomes desconhecidos caem na renderização genérica.
type ToolCall struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// AlertEntry é um alerta gerado pelo agente para uma campanha.
type AlertEntry struct {
	Campaign       string   `json:"campaign"`
	Severity       Severity `json:"severity"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
	Timestamp      string   `json:"timestamp"`
	Status         string   `json:"status,omitempty"`
}

// AnalysisResult é a resposta estruturada de uma execução do agente de
// análise. AlertsCount e o tamanho de ToolCallsLog são independentes: nem
// toda chamada de ferramenta gera alerta.
type AnalysisResult struct {
	OverallHealth HealthStatus `json:"overall_health"`
	AlertsCount   int          `json:"alerts_count"`
	RowsAnalysed  int          `json:"rows_analysed"`
	ToolCallsLog  []ToolCall   `json:"tool_calls_log"`
	Alerts        []AlertEntry `json:"alerts"`
	Report        string       `json:"report,omitempty"`
	Summary       string       `json:"summary,omitempty"`
}

// AlertCounts são os contadores por severidade exibidos nos chips de filtro
// da página de alertas.
type AlertCounts struct {
	All    int `json:"all"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// AlertLog é o log de alertas com os contadores já derivados.
type AlertLog struct {
	Alerts []AlertEntry `json:"alerts"`
	Counts AlertCounts  `json:"counts"`
}
