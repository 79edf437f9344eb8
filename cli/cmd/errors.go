package cmd

import (
	"errors"
	"fmt"
)

const usage = "Usage: privat-rates <number_of_days>"

var (
	// ErrInvalidDays is printed to the user as is.
	ErrInvalidDays = errors.New("Invalid number of days.")

	// errReported marks a failure whose message was already printed.
	errReported = errors.New("error already reported")
)

type (
	// UsageError is returned for a wrong number of arguments or a flag that
	// cannot be parsed.
	UsageError struct {
		Reason error
	}

	RangeError struct {
		Max int
	}
)

func (e UsageError) Error() string {
	if e.Reason == nil {
		return usage
	}

	return e.Reason.Error() + "\n" + usage
}

func (e UsageError) Unwrap() error {
	return e.Reason
}

func (e RangeError) Error() string {
	return fmt.Sprintf("You can fetch rates for up to %d days only.", e.Max)
}
