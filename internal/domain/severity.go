package domain

// Severity classifica um alerta. Valores fora do conjunto conhecido são
// tratados como a severidade mais baixa na exibição, nunca como erro.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// HealthStatus é a saúde geral apurada por uma execução de análise.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

// DisplayMeta são os metadados de exibição de uma severidade ou status de
// saúde: rótulo, cor e ícone que o frontend aplica sem lógica própria.
type DisplayMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Meta resolve os metadados de exibição da severidade. O braço default cobre
// severidades desconhecidas com o estilo de menor gravidade.
func (s Severity) Meta() DisplayMeta {
	switch s {
	case SeverityHigh:
		return DisplayMeta{Label: "HIGH", Color: "red", Icon: "alert-triangle"}
	case SeverityMedium:
		return DisplayMeta{Label: "MEDIUM", Color: "amber", Icon: "info"}
	case SeverityLow:
		return DisplayMeta{Label: "LOW", Color: "blue", Icon: "check-circle"}
	default:
		return DisplayMeta{Label: "LOW", Color: "blue", Icon: "check-circle"}
	}
}

// Meta resolve os metadados de exibição do status de saúde, com fallback
// para o estilo saudável quando o valor é desconhecido.
func (h HealthStatus) Meta() DisplayMeta {
	switch h {
	case HealthCritical:
		return DisplayMeta{Label: "Critical", Color: "red", Icon: "trending-down"}
	case HealthWarning:
		return DisplayMeta{Label: "Warning", Color: "amber", Icon: "minus"}
	case HealthHealthy:
		return DisplayMeta{Label: "All Healthy", Color: "emerald", Icon: "trending-up"}
	default:
		return DisplayMeta{Label: "All Healthy", Color: "emerald", Icon: "trending-up"}
	}
}

// ToolDisplayMeta resolve os metadados de exibição de uma chamada de
// ferramenta do agente. Ferramentas desconhecidas recebem a renderização
// genérica com o próprio nome como rótulo.
func ToolDisplayMeta(tool string) DisplayMeta {
	switch tool {
	case "get_campaign_trend":
		return DisplayMeta{Label: "Trend Analysis", Color: "blue", Icon: "activity"}
	case "create_alert":
		return DisplayMeta{Label: "Alert Created", Color: "red", Icon: "bell"}
	case "generate_report":
		return DisplayMeta{Label: "Report Generated", Color: "violet", Icon: "file-text"}
	default:
		return DisplayMeta{Label: tool, Color: "violet", Icon: "bot"}
	}
}
