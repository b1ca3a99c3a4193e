package response

import (
	"time"

	"customer-feedback/internal/data/entity"
	"customer-feedback/pkg/utils"
)

// CommentPreviewChars is how much of a comment the dashboard table shows inline.
const CommentPreviewChars = 50

type FeedbackResponse struct {
	ID             string    `json:"id"`
	UserName       string    `json:"user_name"`
	ProductName    string    `json:"product_name"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CommentPreview string    `json:"comment_preview"`
	Sentiment      string    `json:"sentiment"`
	CreatedAt      time.Time `json:"created_at"`
}

type SortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type FeedbackListResponse struct {
	Sort     SortResponse       `json:"sort"`
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int                `json:"total"`
}

// Helper converter
func FeedbackToResponse(f entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:             f.ID,
		UserName:       f.UserName,
		ProductName:    string(f.ProductName),
		Rating:         f.Rating,
		Comment:        f.Comment,
		CommentPreview: utils.Truncate(f.Comment, CommentPreviewChars),
		Sentiment:      string(f.Sentiment),
		CreatedAt:      f.CreatedAt,
	}
}
