package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analyticsClient := analyticsclient.NewClient(cfg)
	analyticsIntegrator := analytics.New(cfg, analyticsClient)

	dashboardService := dashboarding.NewService(cfg, analyticsIntegrator)
	defer dashboardService.Close()

	analysisService := analyzing.NewService(cfg, analyticsIntegrator)
	alertService := alerting.NewService(analyticsIntegrator)

	// As opções de filtro são carregadas uma única vez; falha não é fatal
	dashboardService.LoadFilterOptions(ctx)

	// Primeiro ciclo de carga sem filtros, para o dashboard não abrir vazio
	if _, err := dashboardService.Load(ctx, domain.NewFilterSelection()); err != nil {
		logrus.WithError(err).Warn("Carga inicial do dashboard falhou, servindo estado de erro")
	}

	dashboardRefreshService := scheduler.NewDashboardRefreshService(dashboardService, cfg)

	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		analysisService,
		alertService,
		dashboardRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
