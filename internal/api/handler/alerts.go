package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// GetAlerts retorna o log de alertas com os contadores por severidade.
func GetAlerts(service alerting.AlertLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		alertLog, err := service.List(r.Context())
		if err != nil {
			logger.WithError(err).Error("alerts: failed to list alerts")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao buscar os alertas", nil)
			return
		}

		logger.WithField("count", alertLog.Counts.All).Debug("alerts: successfully listed alerts")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alertLog); err != nil {
			logger.WithError(err).Error("alerts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ClearAlerts apaga todos os alertas no servidor de analytics.
func ClearAlerts(service alerting.AlertLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := service.ClearAll(r.Context()); err != nil {
			logger.WithError(err).Error("alerts: failed to clear alerts")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao apagar os alertas", nil)
			return
		}

		logger.Info("alerts: all alerts cleared")

		response := map[string]any{
			"message": "Todos os alertas foram apagados",
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("alerts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
