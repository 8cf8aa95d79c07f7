package singlell

import "errors"

var (
	ErrEmptyList = errors.New("the list is empty and nothing can be removed")
	ErrNotFound  = errors.New("value not found in the list")
)

// Outcome is the result of a Remove call expressed as a value.
type Outcome uint8

const (
	Removed Outcome = iota
	NotFound
	EmptyList
)

func (o Outcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	case EmptyList:
		return "empty_list"
	default:
		return "unknown"
	}
}

// OutcomeOf maps an error returned by Remove onto its Outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Removed
	case errors.Is(err, ErrEmptyList):
		return EmptyList
	default:
		return NotFound
	}
}
