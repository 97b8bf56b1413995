package dashboarding

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func TestPivotRoasSeries(t *testing.T) {
	tests := []struct {
		name     string
		points   []domain.SeriesPoint
		validate func(t *testing.T, chart domain.RoasChart)
	}{
		{
			name:   "Entrada vazia - gráfico vazio, não é erro",
			points: []domain.SeriesPoint{},
			validate: func(t *testing.T, chart domain.RoasChart) {
				assert.True(t, chart.IsEmpty())
				assert.Empty(t, chart.Rows)
				assert.Empty(t, chart.Campaigns)
			},
		},
		{
			name: "Campanhas na mesma data compartilham o balde",
			points: []domain.SeriesPoint{
				{Date: "2024-06-01", Campaign: "A", Roas: 2.0},
				{Date: "2024-06-01", Campaign: "B", Roas: 1.1},
				{Date: "2024-06-02", Campaign: "A", Roas: 2.2},
			},
			validate: func(t *testing.T, chart domain.RoasChart) {
				require.Len(t, chart.Rows, 2)

				assert.Equal(t, "06-01", chart.Rows[0].Date)
				assert.Equal(t, map[string]float64{"A": 2.0, "B": 1.1}, chart.Rows[0].Values)

				assert.Equal(t, "06-02", chart.Rows[1].Date)
				assert.Equal(t, map[string]float64{"A": 2.2}, chart.Rows[1].Values)

				assert.Equal(t, []string{"A", "B"}, chart.Campaigns)
			},
		},
		{
			name: "Par (data, campanha) duplicado - vale a última escrita",
			points: []domain.SeriesPoint{
				{Date: "2024-06-01", Campaign: "A", Roas: 2.0},
				{Date: "2024-06-01", Campaign: "A", Roas: 9.9},
			},
			validate: func(t *testing.T, chart domain.RoasChart) {
				require.Len(t, chart.Rows, 1)
				assert.Equal(t, map[string]float64{"A": 9.9}, chart.Rows[0].Values)
			},
		},
		{
			name: "Anos diferentes com o mesmo rótulo MM-DD são fundidos",
			points: []domain.SeriesPoint{
				{Date: "2023-06-01", Campaign: "A", Roas: 1.0},
				{Date: "2024-06-01", Campaign: "B", Roas: 2.0},
			},
			validate: func(t *testing.T, chart domain.RoasChart) {
				require.Len(t, chart.Rows, 1)
				assert.Equal(t, "06-01", chart.Rows[0].Date)
				assert.Equal(t, map[string]float64{"A": 1.0, "B": 2.0}, chart.Rows[0].Values)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, PivotRoasSeries(tt.points))
		})
	}
}

func TestPivotRoasSeries_TruncaAosUltimos30(t *testing.T) {
	// 40 datas distintas de junho e julho, em ordem cronológica
	points := make([]domain.SeriesPoint, 0, 40)
	for day := 1; day <= 40; day++ {
		month, dayOfMonth := 6, day
		if day > 30 {
			month, dayOfMonth = 7, day-30
		}
		points = append(points, domain.SeriesPoint{
			Date:     fmt.Sprintf("2024-%02d-%02d", month, dayOfMonth),
			Campaign: "A",
			Roas:     float64(day),
		})
	}

	chart := PivotRoasSeries(points)

	require.Len(t, chart.Rows, 30)

	// As 10 primeiras datas caem na truncagem; a janela começa em 06-11
	assert.Equal(t, "06-11", chart.Rows[0].Date)
	assert.Equal(t, "07-10", chart.Rows[29].Date)
}

func TestPivotRoasSeries_DeterministicoComEntradaEmbaralhada(t *testing.T) {
	points := make([]domain.SeriesPoint, 0, 35)
	for day := 1; day <= 35; day++ {
		month, dayOfMonth := 6, day
		if day > 30 {
			month, dayOfMonth = 7, day-30
		}
		points = append(points, domain.SeriesPoint{
			Date:     fmt.Sprintf("2024-%02d-%02d", month, dayOfMonth),
			Campaign: "A",
			Roas:     float64(day) / 10.0,
		})
	}

	expected := PivotRoasSeries(points)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		shuffled := make([]domain.SeriesPoint, len(points))
		copy(shuffled, points)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected.Rows, PivotRoasSeries(shuffled).Rows)
	}
}
