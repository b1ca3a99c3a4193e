package usecase

import (
	"context"
	"fmt"

	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/dto/response"
	"customer-feedback/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService interface {
	GetProducts(ctx context.Context) ([]string, error)
	ListFeedback(ctx context.Context, state SortState) (*response.FeedbackListResponse, error)
	GetFeedback(ctx context.Context, id string) (*response.FeedbackResponse, error)

	// SubmitFeedback validates a submission and acknowledges it. Nothing is stored and
	// the dataset is left untouched.
	SubmitFeedback(ctx context.Context, req *request.SubmitFeedbackRequest) (*response.SubmissionResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) GetProducts(ctx context.Context) ([]string, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	names := make([]string, len(products))
	for i, p := range products {
		names[i] = string(p)
	}
	return names, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, state SortState) (*response.FeedbackListResponse, error) {
	records, err := s.repo.Feedback.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to read feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	SortFeedback(records, state)

	items := make([]response.FeedbackResponse, len(records))
	for i, rec := range records {
		items[i] = response.FeedbackToResponse(rec)
	}

	s.log.Debug("Feedback listed",
		zap.String("sort", string(state.Field)),
		zap.String("dir", string(state.Direction)),
		zap.Int("count", len(items)),
	)

	return &response.FeedbackListResponse{
		Sort: response.SortResponse{
			Field:     string(state.Field),
			Direction: string(state.Direction),
		},
		Feedback: items,
		Total:    len(items),
	}, nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, id string) (*response.FeedbackResponse, error) {
	rec, err := s.repo.Feedback.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("feedback %s not found", id)
	}

	resp := response.FeedbackToResponse(*rec)
	return &resp, nil
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, req *request.SubmitFeedbackRequest) (*response.SubmissionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	// The submitted comment is taken as is; its length is the last check in Validate.
	form := FeedbackForm{Comment: req.Comment}
	form.SelectProduct(req.ProductName)
	form.RateWith(req.Rating)

	if err := form.Validate(); err != nil {
		s.rejected(err, &form)
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	reference := uuid.NewString()
	s.log.Info("Feedback submitted",
		zap.String("reference", reference),
		zap.String("product", form.ProductName),
		zap.Int("rating", form.Rating),
		zap.Int("comment_chars", form.CommentLength()),
	)
	metrics.RecordSubmission(metrics.OutcomeAccepted)

	form.Reset()

	return &response.SubmissionResponse{
		Reference:    reference,
		Notification: submittedNotification(),
		Form: response.FormResponse{
			ProductName: form.ProductName,
			Rating:      form.Rating,
			Comment:     form.Comment,
		},
	}, nil
}

func (s *feedbackService) rejected(err error, form *FeedbackForm) {
	s.log.Warn("Feedback submission rejected",
		zap.Error(err),
		zap.String("stage", string(form.Stage())),
	)
	metrics.RecordSubmission(submissionOutcome(err))
}

func submissionOutcome(err error) string {
	switch err {
	case ErrProductRequired:
		return metrics.OutcomeProductRequired
	case ErrRatingRequired:
		return metrics.OutcomeRatingRequired
	case ErrCommentRequired:
		return metrics.OutcomeCommentRequired
	case ErrCommentTooLong:
		return metrics.OutcomeCommentTooLong
	default:
		return metrics.OutcomeError
	}
}
