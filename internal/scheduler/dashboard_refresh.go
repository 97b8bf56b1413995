package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
)

// DashboardRefreshConfig representa a configuração do agendador de
// atualização do dashboard
type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService mantém o estado comprometido do dashboard aquecido
// com uma recarga periódica sem filtros
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	dashboard dashboarding.Dashboarder

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewDashboardRefreshService cria uma nova instância do serviço de
// atualização agendada do dashboard
func NewDashboardRefreshService(
	dashboard dashboarding.Dashboarder,
	appConfig *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		Enabled:      appConfig.DashboardRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		dashboard: dashboard,
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDashboard()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRefresh dispara uma atualização fora do horário agendado
func (s *DashboardRefreshService) TriggerManualRefresh() {
	go s.refreshDashboard()
}

// Status retorna o estado atual do agendador para o endpoint de cron
func (s *DashboardRefreshService) Status() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.refreshRunning,
	}

	if !s.lastRefreshStartedAt.IsZero() {
		status["last_refresh_started_at"] = s.lastRefreshStartedAt.Format(time.RFC3339)
	}
	if !s.lastRefreshCompletedAt.IsZero() {
		status["last_refresh_completed_at"] = s.lastRefreshCompletedAt.Format(time.RFC3339)
	}

	return status
}

// refreshDashboard recarrega o dashboard sem filtros ativos
func (s *DashboardRefreshService) refreshDashboard() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização agendada do dashboard")

	if _, err := s.dashboard.Load(context.Background(), domain.NewFilterSelection()); err != nil {
		if err == dashboarding.ErrSuperseded {
			logrus.Info("Atualização agendada substituída por uma recarga manual")
			return
		}
		logrus.WithError(err).Error("Erro na atualização agendada do dashboard")
		return
	}

	logrus.Info("Atualização agendada do dashboard concluída com sucesso")
}
