package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		KpiCounter: config.KpiCounter{
			DurationMs: 50,
			Steps:      5,
		},
	}
}

func TestService_Load_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockIntegrator(ctrl)

	records := []domain.CampaignRecord{
		{Campaign: "A", Roas: 2.0, Spend: 100.0, Revenue: 200.0},
		{Campaign: "B", Roas: 1.0, Spend: 300.0, Revenue: 300.0},
	}
	series := []domain.SeriesPoint{
		{Date: "2024-06-01", Campaign: "A", Roas: 2.0},
		{Date: "2024-06-02", Campaign: "A", Roas: 2.1},
	}

	mockAnalytics.EXPECT().
		GetLatestSnapshot(gomock.Any(), gomock.Any()).
		Return(records, nil)
	mockAnalytics.EXPECT().
		GetRoasSeries(gomock.Any(), gomock.Any()).
		Return(series, nil)

	service := NewService(testConfig(), mockAnalytics)
	defer service.Close()

	snapshot, err := service.Load(context.Background(), domain.NewFilterSelection())

	require.NoError(t, err)
	assert.Equal(t, StatusReady, snapshot.Status)
	assert.Empty(t, snapshot.Error)
	assert.Len(t, snapshot.Campaigns, 2)
	assert.InDelta(t, 400.0, snapshot.Summary.TotalSpend, 0.0001)
	assert.InDelta(t, 500.0, snapshot.Summary.TotalRevenue, 0.0001)
	assert.InDelta(t, 1.5, snapshot.Summary.AvgRoas, 0.0001)
	assert.Equal(t, 1, snapshot.Summary.CriticalCount)
	assert.Len(t, snapshot.Chart.Rows, 2)
	assert.NotNil(t, snapshot.LastLoadedAt)
}

func TestService_Load_FalhaParcialEhFalhaTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockIntegrator(ctrl)

	// O snapshot resolve, a série falha: o ciclo inteiro falha
	mockAnalytics.EXPECT().
		GetLatestSnapshot(gomock.Any(), gomock.Any()).
		Return([]domain.CampaignRecord{{Campaign: "A", Roas: 2.0}}, nil)
	mockAnalytics.EXPECT().
		GetRoasSeries(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	service := NewService(testConfig(), mockAnalytics)
	defer service.Close()

	snapshot, err := service.Load(context.Background(), domain.NewFilterSelection())

	require.Error(t, err)
	assert.Nil(t, snapshot)

	current := service.Current()
	assert.Equal(t, StatusError, current.Status)
	assert.Contains(t, current.Error, "API de analytics")
	assert.Empty(t, current.Campaigns)
}

func TestService_Load_RespostaAtrasadaNaoSobrescreve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockIntegrator(ctrl)

	staleRecords := []domain.CampaignRecord{{Campaign: "Antiga", Roas: 1.0}}
	freshRecords := []domain.CampaignRecord{{Campaign: "Recente", Roas: 3.0}}

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	// A primeira busca fica presa até a segunda terminar
	mockAnalytics.EXPECT().
		GetLatestSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.FilterSelection) ([]domain.CampaignRecord, error) {
			close(firstStarted)
			<-release
			return staleRecords, nil
		})
	mockAnalytics.EXPECT().
		GetLatestSnapshot(gomock.Any(), gomock.Any()).
		Return(freshRecords, nil)
	mockAnalytics.EXPECT().
		GetRoasSeries(gomock.Any(), gomock.Any()).
		Return([]domain.SeriesPoint{}, nil).
		Times(2)

	service := NewService(testConfig(), mockAnalytics)
	defer service.Close()

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.Load(context.Background(), domain.NewFilterSelection())
		firstDone <- err
	}()

	<-firstStarted

	selection := domain.NewFilterSelection()
	selection.Platform = "Meta Ads"

	snapshot, err := service.Load(context.Background(), selection)
	require.NoError(t, err)
	assert.Equal(t, "Recente", snapshot.Campaigns[0].Campaign)

	close(release)

	select {
	case err := <-firstDone:
		assert.Equal(t, ErrSuperseded, err)
	case <-time.After(2 * time.Second):
		t.Fatal("o primeiro carregamento não terminou")
	}

	// O estado visível continua sendo o do carregamento mais recente
	current := service.Current()
	assert.Equal(t, StatusReady, current.Status)
	assert.Equal(t, "Recente", current.Campaigns[0].Campaign)
	assert.Equal(t, "Meta Ads", current.Selection.Platform)
}

func TestService_LoadFilterOptions(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *mocks.MockIntegrator)
		expected domain.FilterOptions
	}{
		{
			name: "Sucesso - opções ficam disponíveis para os dropdowns",
			setup: func(m *mocks.MockIntegrator) {
				m.EXPECT().GetFilterOptions(gomock.Any()).Return(&domain.FilterOptions{
					Platforms:  []string{"Meta Ads", "Google Ads"},
					Industries: []string{"Varejo"},
					Countries:  []string{"BR"},
				}, nil)
			},
			expected: domain.FilterOptions{
				Platforms:  []string{"Meta Ads", "Google Ads"},
				Industries: []string{"Varejo"},
				Countries:  []string{"BR"},
			},
		},
		{
			name: "Falha é engolida - dashboard segue com opções vazias",
			setup: func(m *mocks.MockIntegrator) {
				m.EXPECT().GetFilterOptions(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expected: domain.FilterOptions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalytics := mocks.NewMockIntegrator(ctrl)
			tt.setup(mockAnalytics)

			service := NewService(testConfig(), mockAnalytics)
			defer service.Close()

			service.LoadFilterOptions(context.Background())

			assert.Equal(t, tt.expected, service.Options())
		})
	}
}
