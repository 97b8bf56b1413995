package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// RunAnalysis dispara uma execução do agente de análise para a seleção de
// filtros da query string e aguarda o resultado. Enquanto uma execução está
// em voo novas chamadas recebem 409.
func RunAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection := selectionFromQuery(r)

		logger.WithFields(log.Fields{
			"platform": selection.Platform,
			"industry": selection.Industry,
			"country":  selection.Country,
		}).Info("analysis: run requested")

		_, err := service.Run(r.Context(), selection)
		if err == analyzing.ErrAnalysisRunning {
			logger.Info("analysis: rejected, a run is already in flight")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisRunning, err.Error(), nil)
			return
		}

		status := service.Status()

		if err != nil {
			logger.WithError(err).Error("analysis: run failed")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailed, status.Error, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("analysis: failed to encode run response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAnalysisStatus retorna o estado do runner com o último resultado bem
// sucedido, se houver.
func GetAnalysisStatus(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logger.WithError(err).Error("analysis: failed to encode status response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
