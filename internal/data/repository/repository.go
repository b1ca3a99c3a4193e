package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Feedback FeedbackRepository
	Product  ProductRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Feedback: NewFeedbackRepository(seedFeedback, log),
		Product:  NewProductRepository(log),
	}
}
