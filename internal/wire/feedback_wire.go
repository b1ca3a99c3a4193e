package wire

import (
	"customer-feedback/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler) {
	// GET /api/products - Product catalog in form order
	r.Get("/api/products", feedbackHandler.GetProducts)

	r.Route("/api/feedback", func(r chi.Router) {
		r.Get("/", feedbackHandler.ListFeedback)    // Sorted feedback table
		r.Get("/{id}", feedbackHandler.GetFeedback) // Single record
		r.Post("/", feedbackHandler.SubmitFeedback) // Simulated submission
	})
}
