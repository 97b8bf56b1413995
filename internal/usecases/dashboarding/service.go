package dashboarding

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/counter"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Status é o estado do ciclo de carga do dashboard.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// ErrSuperseded indica que o carregamento foi substituído por uma requisição
// mais recente antes de resolver; o resultado foi descartado sem tocar no
// estado visível.
var ErrSuperseded = errorSuperseded{}

type errorSuperseded struct{}

func (errorSuperseded) Error() string {
	return "carregamento substituído por uma requisição mais recente"
}

// DisplayedKpis são os valores animados dos KPIs do cabeçalho: convergem
// suavemente para os valores reais depois de cada commit.
type DisplayedKpis struct {
	TotalSpend   float64 `json:"total_spend"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRoas      float64 `json:"avg_roas"`
}

// Snapshot é a fatia de estado visível do dashboard. Substituída de forma
// atômica a cada commit: campanhas, resumo e gráfico refletem sempre o mesmo
// ciclo de carga, nunca uma mistura.
type Snapshot struct {
	Status       Status                  `json:"status"`
	Error        string                  `json:"error,omitempty"`
	Selection    domain.FilterSelection  `json:"selection"`
	Campaigns    []domain.CampaignRecord `json:"campaigns"`
	Summary      domain.KpiSummary       `json:"summary"`
	Displayed    DisplayedKpis           `json:"displayed"`
	Chart        domain.RoasChart        `json:"chart"`
	LastLoadedAt *time.Time              `json:"last_loaded_at,omitempty"`
}

// Dashboarder define a interface do serviço de dados do dashboard.
type Dashboarder interface {
	// Load busca snapshot e série para a seleção de filtros e faz o commit atômico
	Load(ctx context.Context, selection domain.FilterSelection) (*Snapshot, error)

	// Current retorna o último estado comprometido
	Current() *Snapshot

	// LoadFilterOptions busca as opções de filtro uma única vez, best-effort
	LoadFilterOptions(ctx context.Context)

	// Options retorna as opções de filtro carregadas (vazias se a busca falhou)
	Options() domain.FilterOptions

	// Close encerra os contadores de animação
	Close()
}

// Service orquestra as buscas concorrentes de dados de campanha e é o único
// escritor do estado visível do dashboard.
type Service struct {
	cfg       *config.Config
	analytics analytics.Integrator

	// Token monotônico de requisição: apenas o carregamento mais recente
	// pode escrever o estado (last-request-wins)
	seq atomic.Uint64

	mu           sync.Mutex
	status       Status
	errMsg       string
	selection    domain.FilterSelection
	campaigns    []domain.CampaignRecord
	summary      domain.KpiSummary
	chart        domain.RoasChart
	options      domain.FilterOptions
	lastLoadedAt time.Time

	spendCounter   *counter.Transition
	revenueCounter *counter.Transition
	roasCounter    *counter.Transition
}

// NewService cria o serviço do dashboard com os contadores de KPI na
// cadência configurada.
func NewService(cfg *config.Config, analyticsService analytics.Integrator) *Service {
	duration := cfg.KpiCounter.CounterDuration()
	steps := counter.WithSteps(cfg.KpiCounter.Steps)

	return &Service{
		cfg:            cfg,
		analytics:      analyticsService,
		status:         StatusIdle,
		selection:      domain.NewFilterSelection(),
		chart:          domain.RoasChart{Rows: []domain.RoasChartRow{}, Campaigns: []string{}},
		spendCounter:   counter.New(duration, steps),
		revenueCounter: counter.New(duration, steps),
		roasCounter:    counter.New(duration, steps),
	}
}

// Load busca em paralelo o snapshot mais recente e a série histórica para a
// seleção informada e comete ambos de forma atômica. Se um carregamento mais
// novo começar enquanto este está pendente, o resultado deste é descartado
// (ErrSuperseded); respostas atrasadas nunca sobrescrevem um estado mais
// recente.
func (s *Service) Load(ctx context.Context, selection domain.FilterSelection) (*Snapshot, error) {
	token := s.seq.Add(1)

	logrus.WithFields(logrus.Fields{
		"request_token": token,
		"platform":      selection.Platform,
		"industry":      selection.Industry,
		"country":       selection.Country,
	}).Info("Iniciando carregamento do dashboard")

	s.mu.Lock()
	s.status = StatusLoading
	s.errMsg = ""
	s.mu.Unlock()

	var (
		records    []domain.CampaignRecord
		series     []domain.SeriesPoint
		recordsErr error
		seriesErr  error
	)

	// As duas buscas partem juntas e não têm garantia de ordem de término;
	// o commit espera as duas resolverem
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		records, recordsErr = s.analytics.GetLatestSnapshot(ctx, selection)
	}()

	go func() {
		defer wg.Done()
		series, seriesErr = s.analytics.GetRoasSeries(ctx, selection)
	}()

	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq.Load() {
		logrus.WithField("request_token", token).Debug("Carregamento substituído, resultado descartado")
		return nil, ErrSuperseded
	}

	// Falha parcial é falha total do ciclo: o modelo de estado não suporta
	// dashboard meio carregado
	if recordsErr != nil || seriesErr != nil {
		firstErr := recordsErr
		if firstErr == nil {
			firstErr = seriesErr
		}

		logrus.WithError(firstErr).WithField("request_token", token).Error("Falha ao carregar dados do dashboard")

		s.status = StatusError
		s.errMsg = "Falha ao conectar com a API de analytics. Verifique se o serviço está no ar."
		return nil, firstErr
	}

	s.status = StatusReady
	s.selection = selection
	s.campaigns = records
	s.summary = SummarizeCampaigns(records)
	s.chart = PivotRoasSeries(series)
	s.lastLoadedAt = time.Now()

	// Os contadores reiniciam do último valor exibido rumo aos novos KPIs
	s.spendCounter.Set(s.summary.TotalSpend)
	s.revenueCounter.Set(s.summary.TotalRevenue)
	s.roasCounter.Set(s.summary.AvgRoas)

	logrus.WithFields(logrus.Fields{
		"request_token": token,
		"campaigns":     len(records),
		"chart_rows":    len(s.chart.Rows),
	}).Info("Dashboard carregado com sucesso")

	return s.snapshotLocked(), nil
}

// Current retorna o último estado comprometido do dashboard.
func (s *Service) Current() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// LoadFilterOptions busca as opções de filtro uma única vez. A falha é
// engolida de propósito: o dashboard continua utilizável sem os dropdowns.
func (s *Service) LoadFilterOptions(ctx context.Context) {
	options, err := s.analytics.GetFilterOptions(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao carregar opções de filtro, seguindo sem elas")
		return
	}

	s.mu.Lock()
	s.options = *options
	s.mu.Unlock()
}

// Options retorna as opções de filtro carregadas.
func (s *Service) Options() domain.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.options
}

// Close encerra os contadores de animação; nenhuma atualização de valor
// exibido acontece depois daqui.
func (s *Service) Close() {
	s.spendCounter.Stop()
	s.revenueCounter.Stop()
	s.roasCounter.Stop()
}

func (s *Service) snapshotLocked() *Snapshot {
	snapshot := &Snapshot{
		Status:    s.status,
		Error:     s.errMsg,
		Selection: s.selection,
		Campaigns: s.campaigns,
		Summary:   s.summary,
		Chart:     s.chart,
		Displayed: DisplayedKpis{
			TotalSpend:   utils.RoundWithTwoDecimalPlace(s.spendCounter.Value()),
			TotalRevenue: utils.RoundWithTwoDecimalPlace(s.revenueCounter.Value()),
			AvgRoas:      utils.RoundWithTwoDecimalPlace(s.roasCounter.Value()),
		},
	}

	if !s.lastLoadedAt.IsZero() {
		loadedAt := s.lastLoadedAt
		snapshot.LastLoadedAt = &loadedAt
	}

	return snapshot
}
