package dashboarding

import (
	"sort"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// chartWindow é a janela de exibição do gráfico: apenas os últimos 30 baldes
// de data sobrevivem à truncagem.
const chartWindow = 30

// chartBucket acumula um balde durante o pivot, guardando a menor data ISO
// completa observada para ordenar cronologicamente mesmo com entrada fora de
// ordem.
type chartBucket struct {
	label    string
	earliest string
	values   map[string]float64
}

// PivotRoasSeries transforma a lista achatada de observações {data,
// campanha, roas} na tabela indexada por data que o gráfico de múltiplas
// linhas consome.
//
// O rótulo do balde descarta o ano (MM-DD). Datas ISO distintas que colidem
// no mesmo rótulo são fundidas no mesmo balde. É comportamento de exibição
// intencionalmente lossy, não um bug a corrigir. Dentro de um balde vale a
// última escrita para pares (rótulo, campanha) duplicados; não há média.
//
// Os baldes são ordenados pela primeira ocorrência cronológica (menor data
// ISO completa do balde), o que torna o resultado determinístico para
// entradas embaralhadas, e truncados aos últimos 30.
func PivotRoasSeries(points []domain.SeriesPoint) domain.RoasChart {
	chart := domain.RoasChart{
		Rows:      []domain.RoasChartRow{},
		Campaigns: []string{},
	}

	buckets := make(map[string]*chartBucket)
	order := []*chartBucket{}
	seenCampaigns := make(map[string]bool)

	for _, point := range points {
		label := dateLabel(point.Date)

		bucket, exists := buckets[label]
		if !exists {
			bucket = &chartBucket{
				label:    label,
				earliest: point.Date,
				values:   make(map[string]float64),
			}
			buckets[label] = bucket
			order = append(order, bucket)
		} else if point.Date < bucket.earliest {
			bucket.earliest = point.Date
		}

		bucket.values[point.Campaign] = point.Roas

		if !seenCampaigns[point.Campaign] {
			seenCampaigns[point.Campaign] = true
			chart.Campaigns = append(chart.Campaigns, point.Campaign)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].earliest < order[j].earliest
	})

	// A truncagem mantém apenas os baldes mais recentes da janela
	if len(order) > chartWindow {
		order = order[len(order)-chartWindow:]
	}

	for _, bucket := range order {
		chart.Rows = append(chart.Rows, domain.RoasChartRow{
			Date:   bucket.label,
			Values: bucket.values,
		})
	}

	return chart
}

// dateLabel deriva o rótulo compacto de uma data ISO descartando o ano.
func dateLabel(date string) string {
	if len(date) > 5 {
		return date[5:]
	}
	return date
}
