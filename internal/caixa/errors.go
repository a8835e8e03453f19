package caixa

import "fmt"

// FetchError reports a failed download of the upstream listing. StatusCode is
// zero when the request never produced an HTTP response.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch listing: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports listing text that could not be read as delimited records.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse listing: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
