package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"
	"customer-feedback/internal/widget"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status       bool                 `json:"status"`
	Message      string               `json:"message"`
	Data         json.RawMessage      `json:"data"`
	Errors       json.RawMessage      `json:"errors"`
	Notification *widget.Notification `json:"notification"`
}

func newTestHandler() *Handler {
	log := zap.NewNop()
	service := usecase.NewService(repository.NewRepository(log), log)
	return NewHandler(service, view.MustNewRenderer(), log)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func postForm(h http.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestPageHandler_ShowForm(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Page.ShowForm(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "Share Your Feedback")
	assert.Contains(t, body, `<option value="Velocity Punch"`)
	assert.Contains(t, body, "0/500")
	assert.NotContains(t, body, `class="toast`)
}

func TestPageHandler_StarClickKeepsFields(t *testing.T) {
	h := newTestHandler()

	w := postForm(h.Page.SubmitForm, url.Values{
		"product_name": {"Iron Fist"},
		"rating":       {"2"},
		"comment":      {"draft"},
		"star":         {"4"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="rating" value="4"`)
	assert.Contains(t, body, "4 out of 5 stars")
	assert.Contains(t, body, `<option value="Iron Fist" selected>`)
	assert.Contains(t, body, ">draft</textarea>")
	assert.NotContains(t, body, "Feedback Submitted!")
}

func TestPageHandler_SubmitValidationError(t *testing.T) {
	h := newTestHandler()

	w := postForm(h.Page.SubmitForm, url.Values{
		"product_name": {"Iron Fist"},
		"comment":      {"no stars given"},
		"action":       {"submit"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="toast destructive"`)
	assert.Contains(t, body, "Rating Required")
	assert.Contains(t, body, ">no stars given</textarea>")
}

func TestPageHandler_SubmitLongCommentKeepsText(t *testing.T) {
	h := newTestHandler()

	long := strings.Repeat("a", usecase.MaxCommentChars) + "ZZTAIL"
	w := postForm(h.Page.SubmitForm, url.Values{
		"product_name": {"Iron Fist"},
		"rating":       {"3"},
		"comment":      {long},
		"action":       {"submit"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Comment Too Long")
	assert.Contains(t, body, ">"+strings.Repeat("a", usecase.MaxCommentChars)+"</textarea>")
	assert.Contains(t, body, "500/500")
	assert.NotContains(t, body, "ZZTAIL")
}

func TestPageHandler_SubmitLongCommentWithoutProduct(t *testing.T) {
	h := newTestHandler()

	w := postForm(h.Page.SubmitForm, url.Values{
		"rating":  {"3"},
		"comment": {strings.Repeat("b", usecase.MaxCommentChars+1)},
		"action":  {"submit"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Product Required")
}

func TestPageHandler_SubmitSuccessResetsForm(t *testing.T) {
	h := newTestHandler()

	w := postForm(h.Page.SubmitForm, url.Values{
		"product_name": {"Inferno X"},
		"rating":       {"5"},
		"comment":      {"Love it"},
		"action":       {"submit"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Feedback Submitted!")
	assert.Contains(t, body, `<option value="" selected>`)
	assert.Contains(t, body, `name="rating" value="0"`)
	assert.NotContains(t, body, "Love it")
}

func TestPageHandler_ShowDashboard(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Page.ShowDashboard(w, httptest.NewRequest(http.MethodGet, "/dashboard?sort=rating&dir=desc", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Average Ratings")
	assert.Contains(t, body, "Showing 20 reviews")
}

func TestFeedbackHandler_GetProducts(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Feedback.GetProducts(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var products []string
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 10)
	assert.Equal(t, "Nebula Force", products[0])
	assert.Equal(t, "Velocity Punch", products[9])
}

func TestFeedbackHandler_ListFeedback(t *testing.T) {
	h := newTestHandler()

	t.Run("sorted", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Feedback.ListFeedback(w, httptest.NewRequest(http.MethodGet, "/api/feedback?sort=id&dir=desc", nil))

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)

		var list struct {
			Feedback []struct {
				ID string `json:"id"`
			} `json:"feedback"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, 20, list.Total)
		assert.Equal(t, "FB020", list.Feedback[0].ID)
		assert.Equal(t, "FB001", list.Feedback[19].ID)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Feedback.ListFeedback(w, httptest.NewRequest(http.MethodGet, "/api/feedback?sort=createdAt&dir=up", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Status)
		assert.Equal(t, "Invalid query: Direction: Must be one of: asc, desc; Sort: Must be one of: id, userName, productName, rating, sentiment", env.Message)
	})
}

func TestFeedbackHandler_GetFeedback(t *testing.T) {
	h := newTestHandler()
	r := chi.NewRouter()
	r.Get("/api/feedback/{id}", h.Feedback.GetFeedback)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feedback/FB001", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feedback/FB999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedbackHandler_SubmitFeedback(t *testing.T) {
	h := newTestHandler()

	longComment := strings.Repeat("x", usecase.MaxCommentChars+1)

	tests := []struct {
		name    string
		body    string
		code    int
		message string
		variant widget.Variant
	}{
		{"accepted", `{"product_name":"Iron Fist","rating":4,"comment":"Great"}`, http.StatusAccepted, "Feedback Submitted!", widget.VariantDefault},
		{"malformed", `{"product_name":`, http.StatusBadRequest, "Invalid request body", ""},
		{"no product", `{"rating":4,"comment":"Great"}`, http.StatusBadRequest, "Product Required", widget.VariantDestructive},
		{"no product with long comment", `{"rating":4,"comment":"` + longComment + `"}`, http.StatusBadRequest, "Product Required", widget.VariantDestructive},
		{"no rating", `{"product_name":"Iron Fist","comment":"Great"}`, http.StatusBadRequest, "Rating Required", widget.VariantDestructive},
		{"blank comment", `{"product_name":"Iron Fist","rating":4,"comment":"   "}`, http.StatusBadRequest, "Comment Required", widget.VariantDestructive},
		{"long comment", `{"product_name":"Iron Fist","rating":4,"comment":"` + longComment + `"}`, http.StatusBadRequest, "Comment Too Long", widget.VariantDestructive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Feedback.SubmitFeedback(w, httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, w.Code)
			env := decodeEnvelope(t, w)
			assert.Equal(t, tt.message, env.Message)
			if tt.variant == "" {
				assert.Nil(t, env.Notification)
				return
			}
			require.NotNil(t, env.Notification)
			assert.Equal(t, tt.message, env.Notification.Title)
			assert.Equal(t, tt.variant, env.Notification.Variant)
		})
	}
}

func TestAnalyticsHandler_GetProductAnalytics(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Analytics.GetProductAnalytics(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var analytics struct {
		All    []json.RawMessage `json:"all"`
		Top    []json.RawMessage `json:"top"`
		Bottom []json.RawMessage `json:"bottom"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &analytics))
	assert.Len(t, analytics.All, 10)
	assert.Len(t, analytics.Top, 3)
	assert.Len(t, analytics.Bottom, 3)
}
