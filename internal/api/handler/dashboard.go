package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// selectionFromQuery monta a seleção de filtros a partir da query string.
// Chaves ausentes ou vazias mantêm o filtro sem restrição.
func selectionFromQuery(r *http.Request) domain.FilterSelection {
	selection := domain.NewFilterSelection()

	if v := r.URL.Query().Get("platform"); v != "" {
		selection.Platform = v
	}
	if v := r.URL.Query().Get("industry"); v != "" {
		selection.Industry = v
	}
	if v := r.URL.Query().Get("country"); v != "" {
		selection.Country = v
	}

	return selection
}

// GetDashboard retorna o último estado comprometido do dashboard, sem
// disparar nenhuma busca.
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := service.Current()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode snapshot response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshDashboard dispara um novo ciclo de carga para a seleção de filtros
// da query string e responde com o estado resultante.
func RefreshDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection := selectionFromQuery(r)

		logger.WithFields(log.Fields{
			"platform": selection.Platform,
			"industry": selection.Industry,
			"country":  selection.Country,
		}).Info("dashboard: refresh requested")

		snapshot, err := service.Load(r.Context(), selection)
		if err == dashboarding.ErrSuperseded {
			// Uma requisição mais nova venceu; o estado dela é a resposta
			logger.Info("dashboard: refresh superseded by a newer request")
			snapshot = service.Current()
		} else if err != nil {
			logger.WithError(err).Error("dashboard: refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, service.Current().Error, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode snapshot response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFilterOptions retorna as listas de opções dos dropdowns de filtro.
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Options()); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode filter options")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
