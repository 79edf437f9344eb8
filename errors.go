package rates

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingDate = errors.New("response has no date")
	ErrMissingRate = errors.New("missing NBU rate")
)

type (
	HTTPStatusError struct {
		StatusCode int
		URL        string
	}

	NetworkError struct {
		URL string
		Err error
	}

	ParseError struct {
		URL string
		Err error
	}
)

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%d, message='%s', url='%s'", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err came from talking to the upstream API,
// as opposed to making sense of what it returned.
func IsFetchError(err error) bool {
	var statusErr *HTTPStatusError
	var networkErr *NetworkError

	return errors.As(err, &statusErr) || errors.As(err, &networkErr)
}
