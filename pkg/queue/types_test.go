package queue

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelay(t *testing.T) {
	assert.Equal(t, 60*time.Second, backoffDelay(0))
	assert.Equal(t, 60*time.Second, backoffDelay(1))
	assert.Equal(t, 300*time.Second, backoffDelay(2))
	assert.Equal(t, 900*time.Second, backoffDelay(3))
	// Past the schedule the last step repeats.
	assert.Equal(t, 900*time.Second, backoffDelay(7))
}

func TestRetryAfterErrorUnwraps(t *testing.T) {
	inner := errors.New("quota exceeded")
	err := fmt.Errorf("sending step: %w", RetryAfter(15*time.Minute, inner))

	var ra *RetryAfterError
	assert.True(t, errors.As(err, &ra))
	assert.Equal(t, 15*time.Minute, ra.After)
	assert.ErrorIs(t, err, inner)
}

func TestFatalErrorUnwraps(t *testing.T) {
	inner := errors.New("credentials corrupted")
	err := fmt.Errorf("sending step: %w", Fatal(inner))

	var fatal *FatalError
	assert.True(t, errors.As(err, &fatal))
	assert.ErrorIs(t, err, inner)
}
