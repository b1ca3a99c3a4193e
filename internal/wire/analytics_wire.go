package wire

import (
	"customer-feedback/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAnalytics(r chi.Router, analyticsHandler *adaptor.AnalyticsHandler) {
	// GET /api/analytics - Per-product averages with top/bottom rankings
	r.Get("/api/analytics", analyticsHandler.GetProductAnalytics)
}
