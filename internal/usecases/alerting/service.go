package alerting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// AlertLogger define a interface do serviço de log de alertas.
type AlertLogger interface {
	// List obtém o log de alertas com os contadores por severidade
	List(ctx context.Context) (*domain.AlertLog, error)

	// ClearAll apaga todos os alertas no servidor
	ClearAll(ctx context.Context) error
}

// Service expõe o log de alertas gerados pelo agente de análise.
type Service struct {
	analytics analytics.Integrator
}

// NewService cria uma nova instância do serviço de alertas.
func NewService(analyticsService analytics.Integrator) *Service {
	return &Service{analytics: analyticsService}
}

// List busca os alertas (já ordenados do mais recente para o mais antigo
// pelo servidor) e deriva os contadores dos chips de filtro.
func (s *Service) List(ctx context.Context) (*domain.AlertLog, error) {
	alerts, err := s.analytics.GetAlerts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AlertLog{
		Alerts: alerts,
		Counts: CountBySeverity(alerts),
	}, nil
}

// ClearAll apaga todos os alertas no servidor.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.analytics.ClearAlerts(ctx); err != nil {
		return err
	}

	logrus.Info("Todos os alertas foram apagados")
	return nil
}

// CountBySeverity conta os alertas por severidade. Severidades fora do
// conjunto conhecido entram apenas no total.
func CountBySeverity(alerts []domain.AlertEntry) domain.AlertCounts {
	counts := domain.AlertCounts{All: len(alerts)}

	for _, alert := range alerts {
		switch alert.Severity {
		case domain.SeverityHigh:
			counts.High++
		case domain.SeverityMedium:
			counts.Medium++
		case domain.SeverityLow:
			counts.Low++
		}
	}

	return counts
}
