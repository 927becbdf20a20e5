package util

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestParseAbsoluteURL(t *testing.T) {
	assert := assert_.New(t)

	u, err := ParseAbsoluteURL("https://www.youtube.com/watch?v=5qanlirrRWs")
	assert.NoError(err)
	assert.Equal("www.youtube.com", u.Hostname())
	assert.Equal("/watch", u.Path)

	_, err = ParseAbsoluteURL("not a url")
	assert.ErrorIs(err, ErrNoScheme)

	_, err = ParseAbsoluteURL("/watch?v=5qanlirrRWs")
	assert.ErrorIs(err, ErrNoScheme)

	_, err = ParseAbsoluteURL("mailto:someone@example.com")
	assert.ErrorIs(err, ErrNoHost)

	_, err = ParseAbsoluteURL("https://")
	assert.ErrorIs(err, ErrNoHost)

	_, err = ParseAbsoluteURL("https://exa mple.com/")
	assert.Error(err)
}
