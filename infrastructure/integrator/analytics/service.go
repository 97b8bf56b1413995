package analytics

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	analyticsdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// Integrator define a fronteira com a API de analytics de campanhas em
// termos do domínio interno do dashboard.
type Integrator interface {
	// GetLatestSnapshot obtém o snapshot mais recente por plataforma para a seleção de filtros
	GetLatestSnapshot(ctx context.Context, selection domain.FilterSelection) ([]domain.CampaignRecord, error)

	// GetRoasSeries obtém a série histórica diária de ROAS para a seleção de filtros
	GetRoasSeries(ctx context.Context, selection domain.FilterSelection) ([]domain.SeriesPoint, error)

	// GetFilterOptions obtém as listas de opções dos dropdowns
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	// RunAnalysis executa o agente de análise com a seleção de filtros
	RunAnalysis(ctx context.Context, selection domain.FilterSelection) (*domain.AnalysisResult, error)

	// GetAlerts obtém o log de alertas gerados pelo agente
	GetAlerts(ctx context.Context) ([]domain.AlertEntry, error)

	// ClearAlerts apaga todos os alertas no servidor
	ClearAlerts(ctx context.Context) error
}

type AnalyticsIntegrator struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) Integrator {
	return &AnalyticsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AnalyticsIntegrator) GetLatestSnapshot(ctx context.Context, selection domain.FilterSelection) ([]domain.CampaignRecord, error) {
	rows, err := s.Client.GetLatestCampaigns(ctx, selection.AsQueryParams())
	if err != nil {
		logrus.WithError(err).Error("analytics: failed to get latest campaign snapshot from API")
		return nil, err
	}

	records := make([]domain.CampaignRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, FactoryCampaignRecord(row))
	}

	logrus.WithField("records", len(records)).Debug("analytics: successfully retrieved campaign snapshot")

	return records, nil
}

func (s *AnalyticsIntegrator) GetRoasSeries(ctx context.Context, selection domain.FilterSelection) ([]domain.SeriesPoint, error) {
	rows, err := s.Client.GetCampaignSeries(ctx, selection.AsQueryParams())
	if err != nil {
		logrus.WithError(err).Error("analytics: failed to get campaign series from API")
		return nil, err
	}

	points := make([]domain.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.SeriesPoint{
			Date:     row.Date,
			Campaign: row.Campaign,
			Roas:     row.Roas,
		})
	}

	return points, nil
}

func (s *AnalyticsIntegrator) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	data, err := s.Client.GetFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FilterOptions{
		Platforms:  data.Platforms,
		Industries: data.Industries,
		Countries:  data.Countries,
	}, nil
}

func (s *AnalyticsIntegrator) RunAnalysis(ctx context.Context, selection domain.FilterSelection) (*domain.AnalysisResult, error) {
	response, err := s.Client.RunAnalysis(ctx, FactoryAnalyzeRequest(selection))
	if err != nil {
		logrus.WithError(err).Error("analytics: analysis run failed")
		return nil, err
	}

	return FactoryAnalysisResult(response), nil
}

func (s *AnalyticsIntegrator) GetAlerts(ctx context.Context) ([]domain.AlertEntry, error) {
	rows, err := s.Client.GetAlerts(ctx)
	if err != nil {
		logrus.WithError(err).Error("analytics: failed to get alerts from API")
		return nil, err
	}

	alerts := make([]domain.AlertEntry, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, FactoryAlertEntry(row))
	}

	return alerts, nil
}

func (s *AnalyticsIntegrator) ClearAlerts(ctx context.Context) error {
	return s.Client.ClearAlerts(ctx)
}

// FactoryCampaignRecord converte a linha de transporte para o domínio interno.
func FactoryCampaignRecord(row analyticsdomain.CampaignRow) domain.CampaignRecord {
	return domain.CampaignRecord{
		Campaign:    row.Campaign,
		Roas:        row.Roas,
		Spend:       row.Spend,
		Revenue:     row.Revenue,
		Conversions: row.Conversions,
		CTR:         row.CTR,
		CPC:         row.CPC,
		CPA:         row.CPA,
	}
}

// FactoryAnalyzeRequest converte a seleção de filtros para o corpo do POST
// de análise: filtros sem restrição viram campos nulos.
func FactoryAnalyzeRequest(selection domain.FilterSelection) analyticsdomain.AnalyzeRequest {
	request := analyticsdomain.AnalyzeRequest{}

	if params := selection.AsQueryParams(); len(params) > 0 {
		if v := params.Get("platform"); v != "" {
			request.Platform = &v
		}
		if v := params.Get("industry"); v != "" {
			request.Industry = &v
		}
		if v := params.Get("country"); v != "" {
			request.Country = &v
		}
	}

	return request
}

// FactoryAlertEntry converte a linha de alerta de transporte para o domínio.
func FactoryAlertEntry(row analyticsdomain.AlertRow) domain.AlertEntry {
	return domain.AlertEntry{
		Campaign:       row.Campaign,
		Severity:       domain.Severity(row.Severity),
		Issue:          row.Issue,
		Recommendation: row.Recommendation,
		Timestamp:      row.Timestamp,
		Status:         row.Status,
	}
}

// FactoryAnalysisResult converte a resposta de análise para o domínio.
func FactoryAnalysisResult(response *analyticsdomain.AnalysisResponse) *domain.AnalysisResult {
	toolCalls := make([]domain.ToolCall, 0, len(response.ToolCallsLog))
	for _, call := range response.ToolCallsLog {
		toolCalls = append(toolCalls, domain.ToolCall{
			Tool: call.Tool,
			Args: call.Args,
		})
	}

	alerts := make([]domain.AlertEntry, 0, len(response.Alerts))
	for _, row := range response.Alerts {
		alerts = append(alerts, FactoryAlertEntry(row))
	}

	return &domain.AnalysisResult{
		OverallHealth: domain.HealthStatus(response.OverallHealth),
		AlertsCount:   response.AlertsCount,
		RowsAnalysed:  response.RowsAnalysed,
		ToolCallsLog:  toolCalls,
		Alerts:        alerts,
		Report:        response.Report,
		Summary:       response.Summary,
	}
}
