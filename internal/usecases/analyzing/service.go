package analyzing

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// genericFailureMessage é exibida quando a API não devolve um erro
// estruturado com mensagem própria.
const genericFailureMessage = "Falha ao executar a análise. Verifique o servidor da API."

// ErrAnalysisRunning indica que já existe uma execução em voo; uma nova só
// pode começar depois que a atual assentar.
var ErrAnalysisRunning = errors.New("já existe uma análise em andamento")

// RunState é o estado do ciclo de vida de uma execução de análise.
type RunState string

const (
	StateIdle      RunState = "idle"
	StateRunning   RunState = "running"
	StateSucceeded RunState = "succeeded"
	StateFailed    RunState = "failed"
)

// RunStatus é a visão externa do runner: estado, última falha e o último
// resultado bem sucedido. O resultado sobrevive a re-execuções que falham:
// uma nova tentativa instável não apaga a última análise boa da tela.
type RunStatus struct {
	State           RunState               `json:"state"`
	Error           string                 `json:"error,omitempty"`
	RunID           string                 `json:"run_id,omitempty"`
	LastCompletedAt *time.Time             `json:"last_completed_at,omitempty"`
	Result          *domain.AnalysisResult `json:"result,omitempty"`
}

// Analyzer define a interface do runner de análise.
type Analyzer interface {
	// Run dispara uma execução do agente com a seleção de filtros e aguarda o resultado
	Run(ctx context.Context, selection domain.FilterSelection) (*domain.AnalysisResult, error)

	// Status retorna o estado atual do runner
	Status() RunStatus
}

// Service implementa o runner de análise com guarda de reentrância.
type Service struct {
	cfg       *config.Config
	analytics analytics.Integrator

	mu              sync.Mutex
	state           RunState
	errMsg          string
	runID           string
	lastCompletedAt time.Time
	result          *domain.AnalysisResult
}

// NewService cria uma nova instância do runner de análise.
func NewService(cfg *config.Config, analyticsService analytics.Integrator) *Service {
	return &Service{
		cfg:       cfg,
		analytics: analyticsService,
		state:     StateIdle,
	}
}

// Run dispara a análise e aguarda a resposta. A duração é controlada pelo
// servidor e não há timeout do lado de cá; enquanto uma execução está em voo
// novas chamadas são rejeitadas com ErrAnalysisRunning.
func (s *Service) Run(ctx context.Context, selection domain.FilterSelection) (*domain.AnalysisResult, error) {
	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return nil, ErrAnalysisRunning
	}
	s.state = StateRunning
	s.errMsg = ""
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"platform": selection.Platform,
		"industry": selection.Industry,
		"country":  selection.Country,
	}).Info("Iniciando execução da análise")

	result, err := s.analytics.RunAnalysis(ctx, selection)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.errMsg = failureMessage(err)
		// O último resultado bom é preservado de propósito
		logrus.WithError(err).Error("Execução da análise falhou")
		return nil, err
	}

	runID, idErr := utils.GenerateID()
	if idErr != nil {
		logrus.WithError(idErr).Warn("Falha ao gerar o ID da execução")
	}

	s.state = StateSucceeded
	s.result = result
	s.runID = runID
	s.lastCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":         runID,
		"overall_health": result.OverallHealth,
		"alerts_count":   result.AlertsCount,
		"tool_calls":     len(result.ToolCallsLog),
	}).Info("Análise concluída com sucesso")

	return result, nil
}

// Status retorna o estado atual do runner.
func (s *Service) Status() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := RunStatus{
		State:  s.state,
		Error:  s.errMsg,
		RunID:  s.runID,
		Result: s.result,
	}

	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

// failureMessage extrai a mensagem do erro estruturado da API quando
// presente; caso contrário usa o fallback genérico.
func failureMessage(err error) string {
	var apiErr *analyticsclient.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return genericFailureMessage
}
