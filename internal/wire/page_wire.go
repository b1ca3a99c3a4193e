package wire

import (
	"customer-feedback/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePages(r chi.Router, pageHandler *adaptor.PageHandler) {
	// GET / - Feedback form
	r.Get("/", pageHandler.ShowForm)

	// POST / - Star click or submission
	r.Post("/", pageHandler.SubmitForm)

	// GET /dashboard?sort=rating&dir=desc - Analytics and feedback table
	r.Get("/dashboard", pageHandler.ShowDashboard)
}
