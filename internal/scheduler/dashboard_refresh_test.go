package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
)

// fakeDashboard registra as seleções recebidas e permite prender o Load em
// voo para exercitar a guarda de concorrência.
type fakeDashboard struct {
	mu         sync.Mutex
	selections []domain.FilterSelection
	block      chan struct{}
	loadErr    error
}

func (f *fakeDashboard) Load(_ context.Context, selection domain.FilterSelection) (*dashboarding.Snapshot, error) {
	f.mu.Lock()
	f.selections = append(f.selections, selection)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return &dashboarding.Snapshot{Status: dashboarding.StatusReady}, nil
}

func (f *fakeDashboard) Current() *dashboarding.Snapshot { return nil }

func (f *fakeDashboard) LoadFilterOptions(_ context.Context) {}

func (f *fakeDashboard) Options() domain.FilterOptions { return domain.FilterOptions{} }

func (f *fakeDashboard) Close() {}

func (f *fakeDashboard) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.selections)
}

func newTestService(dashboard dashboarding.Dashboarder, enabled bool) *DashboardRefreshService {
	return NewDashboardRefreshService(dashboard, &config.Config{
		DashboardRefresh: config.DashboardRefresh{
			CronSchedule: "0 * * * *",
			Enabled:      enabled,
		},
	})
}

func TestDashboardRefreshService_RefreshCarregaSemFiltros(t *testing.T) {
	dashboard := &fakeDashboard{}
	service := newTestService(dashboard, true)

	service.refreshDashboard()

	require.Equal(t, 1, dashboard.loadCount())
	assert.Equal(t, domain.NewFilterSelection(), dashboard.selections[0])

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.NotEmpty(t, status["last_refresh_completed_at"])
}

func TestDashboardRefreshService_RefreshConcorrenteIgnorado(t *testing.T) {
	dashboard := &fakeDashboard{block: make(chan struct{})}
	service := newTestService(dashboard, true)

	done := make(chan struct{})
	go func() {
		service.refreshDashboard()
		close(done)
	}()

	require.Eventually(t, func() bool {
		return dashboard.loadCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, true, service.Status()["running"])

	// Segunda chamada enquanto a primeira está em voo: não dispara outro Load
	service.refreshDashboard()
	assert.Equal(t, 1, dashboard.loadCount())

	close(dashboard.block)
	<-done

	assert.Equal(t, false, service.Status()["running"])
}

func TestDashboardRefreshService_StartDesabilitadoNaoAgenda(t *testing.T) {
	dashboard := &fakeDashboard{}
	service := newTestService(dashboard, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Equal(t, 0, dashboard.loadCount())
}
