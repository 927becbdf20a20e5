package generic

import (
	"errors"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	assert := assert_.New(t)

	some := Some("")
	assert.True(some.IsSome())
	assert.False(some.IsNone())
	assert.Equal("", some.Unwrap())

	none := None[string]()
	assert.True(none.IsNone())
	assert.Equal("fallback", none.UnwrapOr("fallback"))
	assert.Panics(func() { none.Unwrap() })
	assert.NotEqual(some, none)
}

func TestResult(t *testing.T) {
	assert := assert_.New(t)
	errTest := errors.New("test")

	assert.Equal(1, Unwrap(1, nil))
	assert.Panics(func() { Unwrap(0, errTest) })
	assert.NotPanics(func() { Unwrap_(nil) })
	assert.Panics(func() { Unwrap_(errTest) })
	assert.True(NewResult(0, errTest).IsErr())
}
