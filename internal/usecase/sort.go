package usecase

import (
	"sort"

	"customer-feedback/internal/data/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortByID        SortField = "id"
	SortByUserName  SortField = "userName"
	SortByProduct   SortField = "productName"
	SortByRating    SortField = "rating"
	SortBySentiment SortField = "sentiment"
)

// SortFields lists the sortable table columns in display order.
var SortFields = []SortField{SortByID, SortByUserName, SortByProduct, SortByRating, SortBySentiment}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the dashboard table's active column and direction.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

func DefaultSortState() SortState {
	return SortState{Field: SortByID, Direction: SortAsc}
}

// ParseSortState reads a state from query values, falling back to the default for
// anything it does not recognise.
func ParseSortState(field, direction string) SortState {
	state := DefaultSortState()
	for _, f := range SortFields {
		if string(f) == field {
			state.Field = f
			break
		}
	}
	if SortDirection(direction) == SortDesc {
		state.Direction = SortDesc
	}
	return state
}

// Toggle returns the state after a click on field's header: the same column flips
// direction, another column becomes active in ascending order.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == SortAsc {
			return SortState{Field: field, Direction: SortDesc}
		}
		return SortState{Field: field, Direction: SortAsc}
	}
	return SortState{Field: field, Direction: SortAsc}
}

// newCollator returns a collator for locale-aware string comparison. Collators keep
// internal buffers, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// SortFeedback orders records in place. Equal keys fall back to the record ID, which
// makes every ordering total and desc the exact reverse of asc.
func SortFeedback(records []entity.Feedback, state SortState) {
	col := newCollator()

	compare := func(a, b entity.Feedback) int {
		var c int
		switch state.Field {
		case SortByUserName:
			c = col.CompareString(a.UserName, b.UserName)
		case SortByProduct:
			c = col.CompareString(string(a.ProductName), string(b.ProductName))
		case SortByRating:
			c = a.Rating - b.Rating
		case SortBySentiment:
			c = col.CompareString(string(a.Sentiment), string(b.Sentiment))
		}
		if c == 0 {
			c = col.CompareString(a.ID, b.ID)
		}
		if state.Direction == SortDesc {
			return -c
		}
		return c
	}

	sort.SliceStable(records, func(i, j int) bool {
		return compare(records[i], records[j]) < 0
	})
}
