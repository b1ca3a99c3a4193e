package adaptor

import (
	"bytes"
	"net/http"

	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"
	"customer-feedback/internal/widget"
	"customer-feedback/pkg/metrics"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

// PageHandler serves the HTML screens.
type PageHandler struct {
	feedback  usecase.FeedbackService
	analytics usecase.AnalyticsService
	renderer  *view.Renderer
	log       *zap.Logger
}

func NewPageHandler(feedback usecase.FeedbackService, analytics usecase.AnalyticsService, renderer *view.Renderer, log *zap.Logger) *PageHandler {
	return &PageHandler{
		feedback:  feedback,
		analytics: analytics,
		renderer:  renderer,
		log:       log.With(zap.String("handler", "page")),
	}
}

// ShowForm handles GET /
func (h *PageHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, usecase.FeedbackForm{}, nil)
}

// SubmitForm handles POST /. A posted "star" is a click on the rating control and only
// re-renders the form with the new rating; anything else is a submission.
func (h *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	var form usecase.FeedbackForm
	form.SelectProduct(r.PostFormValue("product_name"))
	form.RateWith(utils.ParseInt(r.PostFormValue("rating"), 0))
	comment := r.PostFormValue("comment")
	commentAccepted := form.EditComment(comment)
	if !commentAccepted {
		// keep what fits rather than dropping the user's text
		form.EditComment(utils.Clip(comment, usecase.MaxCommentChars))
	}

	if star := r.PostFormValue("star"); star != "" {
		form.RateWith(utils.ParseInt(star, 0))
		var n *widget.Notification
		if !commentAccepted {
			tooLong, _ := usecase.NotificationFor(usecase.ErrCommentTooLong)
			n = &tooLong
		}
		h.renderForm(w, r, http.StatusOK, form, n)
		return
	}

	req := &request.SubmitFeedbackRequest{
		ProductName: form.ProductName,
		Rating:      form.Rating,
		Comment:     comment,
	}

	resp, err := h.feedback.SubmitFeedback(r.Context(), req)
	if err != nil {
		n, ok := usecase.NotificationFor(err)
		if !ok {
			h.log.Error("Failed to submit feedback", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, &n)
		return
	}

	reset := usecase.FeedbackForm{
		ProductName: resp.Form.ProductName,
		Rating:      resp.Form.Rating,
		Comment:     resp.Form.Comment,
	}
	h.renderForm(w, r, http.StatusOK, reset, &resp.Notification)
}

// ShowDashboard handles GET /dashboard?sort=&dir=
func (h *PageHandler) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := usecase.ParseSortState(query.Get("sort"), query.Get("dir"))

	analytics, err := h.analytics.GetProductAnalytics(r.Context())
	if err != nil {
		h.log.Error("Failed to compute analytics", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	list, err := h.feedback.ListFeedback(r.Context(), state)
	if err != nil {
		h.log.Error("Failed to list feedback", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	metrics.RecordDashboardView(string(state.Field))
	h.render(w, http.StatusOK, view.DashboardView, view.NewDashboardPage(state, analytics, list))
}

func (h *PageHandler) renderForm(w http.ResponseWriter, r *http.Request, code int, form usecase.FeedbackForm, n *widget.Notification) {
	products, err := h.feedback.GetProducts(r.Context())
	if err != nil {
		h.log.Error("Failed to load products", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, code, view.FormView, view.NewFormPage(products, form, n))
}

func (h *PageHandler) render(w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		h.log.Error("Failed to render template", zap.String("view", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w)
}
