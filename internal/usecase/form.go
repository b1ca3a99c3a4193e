package usecase

import (
	"strings"
	"unicode/utf8"

	"customer-feedback/internal/widget"
	"customer-feedback/pkg/utils"
)

// MaxCommentChars is the form's comment length policy, in characters.
const MaxCommentChars = 500

type FormStage string

const (
	StageEmpty           FormStage = "empty"
	StageProductSelected FormStage = "product-selected"
	StageRated           FormStage = "rated"
	StageCommented       FormStage = "commented"
	StageValid           FormStage = "valid"
)

// FeedbackForm is the state behind the submission form. Zero value is an empty form.
type FeedbackForm struct {
	ProductName string
	Rating      int
	Comment     string
}

// formFields mirrors FeedbackForm for validation; the field order is the order
// failures are reported in.
type formFields struct {
	ProductName string `validate:"required,catalog"`
	Rating      int    `validate:"required,min=1,max=5"`
	Comment     string `validate:"required"`
}

func (f *FeedbackForm) SelectProduct(name string) {
	f.ProductName = strings.TrimSpace(name)
}

// ApplyRating takes the event a star control emits on click.
func (f *FeedbackForm) ApplyRating(ev widget.RatingChanged) {
	f.Rating = ev.Value
}

// RateWith clicks star k on the form's control. Values outside 1..5 leave the rating
// as it was.
func (f *FeedbackForm) RateWith(k int) bool {
	ev, ok := f.StarControl().Click(k)
	if ok {
		f.ApplyRating(ev)
	}
	return ok
}

// EditComment replaces the comment unless the new text exceeds MaxCommentChars, in
// which case the previous text is kept and false is returned.
func (f *FeedbackForm) EditComment(text string) bool {
	if utf8.RuneCountInString(text) > MaxCommentChars {
		return false
	}
	f.Comment = text
	return true
}

func (f *FeedbackForm) CommentLength() int {
	return utf8.RuneCountInString(f.Comment)
}

func (f *FeedbackForm) StarControl() *widget.StarRating {
	return widget.NewStarRating(f.Rating, 32)
}

func (f *FeedbackForm) Reset() {
	*f = FeedbackForm{}
}

func (f *FeedbackForm) fields() formFields {
	return formFields{
		ProductName: f.ProductName,
		Rating:      f.Rating,
		Comment:     strings.TrimSpace(f.Comment),
	}
}

// Validate reports the first failing check: product, then rating, then comment
// presence, then comment length.
func (f *FeedbackForm) Validate() error {
	errs := utils.ValidateStruct(f.fields())
	if _, bad := errs["ProductName"]; bad {
		return ErrProductRequired
	}
	if _, bad := errs["Rating"]; bad {
		return ErrRatingRequired
	}
	if _, bad := errs["Comment"]; bad {
		return ErrCommentRequired
	}
	if f.CommentLength() > MaxCommentChars {
		return ErrCommentTooLong
	}
	return nil
}

// Stage is the furthest step reached, filling fields top to bottom. A form with every
// check passing is valid regardless of fill order.
func (f *FeedbackForm) Stage() FormStage {
	if f.Validate() == nil {
		return StageValid
	}

	fields := f.fields()
	switch {
	case fields.Comment != "":
		return StageCommented
	case fields.Rating > 0:
		return StageRated
	case fields.ProductName != "":
		return StageProductSelected
	default:
		return StageEmpty
	}
}
