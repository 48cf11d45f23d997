package session

import (
	"errors"
	"fmt"
)

var (
	// State errors
	ErrInfoAlreadySubmitted = errors.New("participant info already submitted")
	ErrNotRating            = errors.New("session is not in a rating pass")
	ErrSessionCompleted     = errors.New("session is already completed")

	// Invalid arguments are programmer errors in the presentation layer;
	// the session never clamps or repairs them.
	ErrInvalidQuestionIndex = errors.New("question index out of range")
	ErrInvalidRatingValue   = errors.New("rating value must be an integer between 0 and 100")
)

// IncompleteError reports how many questions are still unanswered when a
// save is attempted. The session state is unchanged when it is returned.
type IncompleteError struct {
	Unanswered int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("assessment incomplete: %d questions unanswered", e.Unanswered)
}

// IsIncomplete checks if an error reports unanswered questions.
func IsIncomplete(err error) bool {
	var ie *IncompleteError
	return errors.As(err, &ie)
}
