package youtube_helper

import (
	"errors"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert := assert_.New(t)

	parseErr := errors.New("parse failure")
	urlErr := error(&InvalidURLError{URL: "x", Err: parseErr})
	assert.ErrorIs(urlErr, ErrInvalidURL)
	assert.ErrorIs(urlErr, parseErr)
	assert.NotErrorIs(urlErr, ErrInvalidHost)
	assert.EqualError(urlErr, `Invalid YouTube resource URL "x".`)

	hostErr := error(&InvalidHostError{Host: "example.com", ValidHosts: []string{"a", "b"}})
	assert.ErrorIs(hostErr, ErrInvalidHost)
	assert.EqualError(hostErr, `Invalid YouTube resource host "example.com". The valid hosts are: a, b.`)

	idErr := error(&InvalidIDError{ID: "short"})
	assert.ErrorIs(idErr, ErrInvalidID)
	assert.NotErrorIs(idErr, ErrInvalidURL)
	assert.EqualError(idErr, `Invalid YouTube resource ID "short". The length of ID should be equal to 11 characters.`)
}
