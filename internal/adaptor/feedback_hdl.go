package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/usecase"
	"customer-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// GetProducts handles GET /api/products
func (h *FeedbackHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetProducts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// ListFeedback handles GET /api/feedback?sort=&dir=
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.ListFeedbackRequest{
		Sort:      query.Get("sort"),
		Direction: query.Get("dir"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid query: "+utils.FormatValidationErrors(validationErrors), validationErrors)
		return
	}

	list, err := h.service.ListFeedback(r.Context(), usecase.ParseSortState(req.Sort, req.Direction))
	if err != nil {
		h.handleServiceError(w, err, "list feedback")
		return
	}

	utils.ResponseSuccess(w, "success", list)
}

// GetFeedback handles GET /api/feedback/{id}
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Feedback ID is required", nil)
		return
	}

	feedback, err := h.service.GetFeedback(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// SubmitFeedback handles POST /api/feedback. The submission is acknowledged, not stored.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.SubmitFeedback(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit feedback")
		return
	}

	utils.ResponseAccepted(w, resp.Notification, resp)
}

// handleServiceError handles errors untuk feedback operations
func (h *FeedbackHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if n, ok := usecase.NotificationFor(err); ok {
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseRejected(w, n)
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
