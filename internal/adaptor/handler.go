package adaptor

import (
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"

	"go.uber.org/zap"
)

type Handler struct {
	Page      *PageHandler
	Feedback  *FeedbackHandler
	Analytics *AnalyticsHandler
}

func NewHandler(service *usecase.Service, renderer *view.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		Page:      NewPageHandler(service.Feedback, service.Analytics, renderer, log),
		Feedback:  NewFeedbackHandler(service.Feedback, log),
		Analytics: NewAnalyticsHandler(service.Analytics, log),
	}
}
