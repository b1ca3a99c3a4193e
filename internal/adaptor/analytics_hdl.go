package adaptor

import (
	"net/http"

	"customer-feedback/internal/usecase"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

// GetProductAnalytics handles GET /api/analytics
func (h *AnalyticsHandler) GetProductAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.GetProductAnalytics(r.Context())
	if err != nil {
		h.log.Error("Failed to get product analytics", zap.Error(err))
		utils.ResponseInternalError(w)
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}
