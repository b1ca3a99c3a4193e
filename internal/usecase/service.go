package usecase

import (
	"customer-feedback/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Feedback  FeedbackService
	Analytics AnalyticsService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Feedback:  NewFeedbackService(repo, log),
		Analytics: NewAnalyticsService(repo.Feedback, log),
	}
}
