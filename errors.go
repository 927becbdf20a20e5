package youtube_helper

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidURL  = errors.New("invalid resource URL")
	ErrInvalidHost = errors.New("invalid resource host")
	ErrInvalidID   = errors.New("invalid resource ID")
)

// InvalidURLError means the input is not an absolute URL, or is one but its path/query holds no recognisable ID.
type InvalidURLError struct {
	URL string
	// Err is the underlying parse failure, if there was one.
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("Invalid YouTube resource URL \"%s\".", e.URL)
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// InvalidHostError means the URL parsed fine but its host is not one of ValidHosts.
type InvalidHostError struct {
	Host       string
	ValidHosts []string
}

func (e *InvalidHostError) Error() string {
	return fmt.Sprintf(
		"Invalid YouTube resource host \"%s\". The valid hosts are: %s.",
		e.Host,
		strings.Join(e.ValidHosts, ", "),
	)
}

func (e *InvalidHostError) Is(target error) bool {
	return target == ErrInvalidHost
}

// InvalidIDError means the ID is not exactly 11 characters long.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf(
		"Invalid YouTube resource ID \"%s\". The length of ID should be equal to 11 characters.",
		e.ID,
	)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}
