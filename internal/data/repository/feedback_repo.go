package repository

import (
	"context"
	"fmt"

	"customer-feedback/internal/data/entity"

	"go.uber.org/zap"
)

type FeedbackRepository interface {
	FindAll(ctx context.Context) ([]entity.Feedback, error)
	FindByID(ctx context.Context, id string) (*entity.Feedback, error)
	Count(ctx context.Context) (int, error)
}

// feedbackRepository serves a fixed snapshot. Every read hands out a copy so callers
// can reorder the slice without touching the snapshot.
type feedbackRepository struct {
	records []entity.Feedback
	log     *zap.Logger
}

func NewFeedbackRepository(records []entity.Feedback, log *zap.Logger) FeedbackRepository {
	snapshot := make([]entity.Feedback, len(records))
	copy(snapshot, records)

	return &feedbackRepository{
		records: snapshot,
		log:     log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]entity.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("find all feedback: %w", err)
	}

	out := make([]entity.Feedback, len(r.records))
	copy(out, r.records)

	r.log.Debug("Feedback snapshot read", zap.Int("count", len(out)))
	return out, nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id string) (*entity.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("find feedback by ID %s: %w", id, err)
	}

	for _, rec := range r.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}

	return nil, nil
}

func (r *feedbackRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return len(r.records), nil
}
