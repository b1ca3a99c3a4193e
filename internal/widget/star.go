// Package widget holds the presentation controls shared by the form and the dashboard.
package widget

const MaxStars = 5

type starPhase int

const (
	starIdle starPhase = iota
	starPreviewing
)

// RatingChanged is emitted to the control's owner when a star is clicked.
type RatingChanged struct {
	Value int
}

// Star is one rendered star of a rating control.
type Star struct {
	Value  int
	Filled bool
}

// StarRating is a 1-5 star picker. An editable control previews the hovered star and
// commits on click; a read-only control always shows its committed rating, which may be
// fractional.
type StarRating struct {
	rating   float64
	readOnly bool
	phase    starPhase
	preview  int
	Size     int
}

func NewStarRating(rating int, size int) *StarRating {
	return &StarRating{rating: float64(rating), Size: size}
}

func NewReadOnlyStarRating(rating float64, size int) *StarRating {
	return &StarRating{rating: rating, readOnly: true, Size: size}
}

func (s *StarRating) ReadOnly() bool { return s.readOnly }

func (s *StarRating) Rating() float64 { return s.rating }

// Hover previews k stars without committing them.
func (s *StarRating) Hover(k int) {
	if s.readOnly || !validStar(k) {
		return
	}
	s.phase = starPreviewing
	s.preview = k
}

// Leave drops any preview and falls back to the committed rating.
func (s *StarRating) Leave() {
	s.phase = starIdle
	s.preview = 0
}

// Click commits k and returns the event for the owner. ok is false when the control
// is read-only or k is not a star.
func (s *StarRating) Click(k int) (ev RatingChanged, ok bool) {
	if s.readOnly || !validStar(k) {
		return RatingChanged{}, false
	}
	s.rating = float64(k)
	return RatingChanged{Value: k}, true
}

// Previewing reports the hovered star, if any.
func (s *StarRating) Previewing() (int, bool) {
	if s.phase != starPreviewing {
		return 0, false
	}
	return s.preview, true
}

func (s *StarRating) Displayed() float64 {
	if k, ok := s.Previewing(); ok {
		return float64(k)
	}
	return s.rating
}

// Stars lays out the five stars. A star is filled when its value is <= the displayed
// rating, so 4.5 shows four filled stars.
func (s *StarRating) Stars() []Star {
	shown := s.Displayed()
	stars := make([]Star, MaxStars)
	for i := range stars {
		v := i + 1
		stars[i] = Star{Value: v, Filled: float64(v) <= shown}
	}
	return stars
}

func (s *StarRating) FilledCount() int {
	n := 0
	for _, st := range s.Stars() {
		if st.Filled {
			n++
		}
	}
	return n
}

func validStar(k int) bool {
	return k >= 1 && k <= MaxStars
}
