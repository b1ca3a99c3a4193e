package usecase

import (
	"errors"

	"customer-feedback/internal/widget"
)

var (
	ErrProductRequired = errors.New("validation failed: product required")
	ErrRatingRequired  = errors.New("validation failed: rating required")
	ErrCommentRequired = errors.New("validation failed: comment required")
	ErrCommentTooLong  = errors.New("invalid comment: too long")
)

// IsValidationError reports whether err is a user input problem rather than a fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrProductRequired) ||
		errors.Is(err, ErrRatingRequired) ||
		errors.Is(err, ErrCommentRequired) ||
		errors.Is(err, ErrCommentTooLong)
}

// NotificationFor maps a submission error to the message shown to the user. ok is
// false for errors that are not input problems.
func NotificationFor(err error) (n widget.Notification, ok bool) {
	switch {
	case errors.Is(err, ErrProductRequired):
		return widget.NewNotification("Product Required", "Please select a product before submitting.", widget.VariantDestructive), true
	case errors.Is(err, ErrRatingRequired):
		return widget.NewNotification("Rating Required", "Please provide a rating before submitting.", widget.VariantDestructive), true
	case errors.Is(err, ErrCommentRequired):
		return widget.NewNotification("Comment Required", "Please add a comment before submitting.", widget.VariantDestructive), true
	case errors.Is(err, ErrCommentTooLong):
		return widget.NewNotification("Comment Too Long", "Comments are limited to 500 characters.", widget.VariantDestructive), true
	default:
		return widget.Notification{}, false
	}
}

func submittedNotification() widget.Notification {
	return widget.NewNotification("Feedback Submitted!", "Thank you for your valuable feedback.", widget.VariantDefault)
}
