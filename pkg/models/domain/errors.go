package domain

import "fmt"

// EmptyInputError is returned when there are no growth rates to compare,
// i.e. the series has fewer than two entries. Length is the series length
// when known.
type EmptyInputError struct {
	Length int
}

func (e *EmptyInputError) Error() string {
	if e.Length > 0 {
		return fmt.Sprintf("no growth rates to compare: series has %d entry, need at least 2", e.Length)
	}
	return "no growth rates to compare: series needs at least 2 entries"
}
