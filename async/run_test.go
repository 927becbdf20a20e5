package async

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	assert := assert_.New(t)
	a := <-Run(func() int {
		return 123
	})
	assert.Equal(123, a)
}

// The result can be abandoned without leaking the goroutine.
func TestRun_Abandoned(t *testing.T) {
	done := make(chan struct{})
	_ = Run(func() int {
		defer close(done)
		return 1
	})
	<-done
}
