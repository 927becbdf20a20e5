package youtube

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alanbriolat/youtube-helper"
)

// IDLength is the exact length, in bytes, of every YouTube video ID.
const IDLength = 11

// IDRule checks the length of a video ID. The character set is only constrained by the URL patterns in FromURL.
var IDRule = validation.By(func(value interface{}) error {
	id, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: expected string, got %T", youtube_helper.ErrInvalidID, value)
	}
	if len(id) != IDLength {
		return &youtube_helper.InvalidIDError{ID: id}
	}
	return nil
})

// IsIDValid reports whether id has exactly IDLength bytes.
func IsIDValid(id string) bool {
	return validateID(id) == nil
}

func validateID(id string) error {
	return validation.Validate(id, IDRule)
}
