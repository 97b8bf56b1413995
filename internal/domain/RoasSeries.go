package domain

// SeriesPoint é uma observação da série histórica de ROAS: um dia, uma
// campanha. Várias campanhas compartilham a mesma data.
type SeriesPoint struct {
	Date     string  `json:"date"`
	Campaign string  `json:"campaign"`
	Roas     float64 `json:"roas"`
}

// RoasChartRow é um balde do gráfico: um rótulo de data (MM-DD, sem o ano) e
// o valor de ROAS de cada campanha observada naquele rótulo.
type RoasChartRow struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// RoasChart é a série achatada já pivotada para o gráfico de múltiplas
// linhas: linhas ordenadas pela primeira ocorrência cronológica e truncadas
// aos últimos 30 baldes, mais a lista de campanhas na ordem em que foram
// vistas (para a legenda).
type RoasChart struct {
	Rows      []RoasChartRow `json:"rows"`
	Campaigns []string       `json:"campaigns"`
}

// IsEmpty indica "sem dados" para o gráfico. Não é um estado de erro.
func (c RoasChart) IsEmpty() bool {
	return len(c.Rows) == 0
}
