package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCanceled(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, IsCanceled(canceled.Err()))
	assert.True(t, IsCanceled(Wrap(context.DeadlineExceeded, "failed to list notifications")))
	assert.True(t, IsCanceled(Join(New("rollback failed"), context.Canceled)))
	assert.False(t, IsCanceled(New("connection refused")))
	assert.False(t, IsCanceled(nil))
}
