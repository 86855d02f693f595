package reputation

import "foodshare/internal/pkg/errs"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a star value in [MinRating, MaxRating].
type Rating int

// NewRating returns an InvalidRatingError for values outside 1..5.
func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return 0, errs.NewInvalidRatingError(value, MinRating, MaxRating)
	}
	return Rating(value), nil
}

func (r Rating) Int() int {
	return int(r)
}

func (r Rating) Validate() error {
	_, err := NewRating(int(r))
	return err
}
