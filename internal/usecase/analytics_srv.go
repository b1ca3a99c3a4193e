package usecase

import (
	"context"
	"fmt"

	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/dto/response"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	GetProductAnalytics(ctx context.Context) (*response.AnalyticsResponse, error)
}

type analyticsService struct {
	feedback repository.FeedbackRepository
	log      *zap.Logger
}

func NewAnalyticsService(feedback repository.FeedbackRepository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		feedback: feedback,
		log:      log.With(zap.String("service", "analytics")),
	}
}

// GetProductAnalytics recomputes the aggregates from the full record set on every call.
func (s *analyticsService) GetProductAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	records, err := s.feedback.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to read feedback for analytics", zap.Error(err))
		return nil, fmt.Errorf("get product analytics: %w", err)
	}

	a := ComputeAnalytics(records)

	resp := &response.AnalyticsResponse{
		All:    make([]response.ProductStatResponse, len(a.All)),
		Top:    make([]response.ProductStatResponse, len(a.Top)),
		Bottom: make([]response.ProductStatResponse, len(a.Bottom)),
	}
	for i, st := range a.All {
		resp.All[i] = statToResponse(st, 0)
	}
	for i, st := range a.Top {
		resp.Top[i] = statToResponse(st, i+1)
	}
	// Bottom ranks count down from the number of products, worst first.
	for i, st := range a.Bottom {
		resp.Bottom[i] = statToResponse(st, len(a.All)-i)
	}

	s.log.Debug("Product analytics computed",
		zap.Int("records", len(records)),
		zap.Int("products", len(a.All)),
	)

	return resp, nil
}

func statToResponse(st ProductStat, rank int) response.ProductStatResponse {
	return response.ProductStatResponse{
		Rank:          rank,
		Product:       string(st.Product),
		AverageRating: st.AverageRating,
		Count:         st.Count,
	}
}
