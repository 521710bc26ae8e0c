package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestRegister_RejectsDuplicateName(t *testing.T) {
	svc := NewService(arbor.NewLogger())

	require.NoError(t, svc.Register("refresh", "*/5 * * * *", func() error { return nil }))
	assert.Error(t, svc.Register("refresh", "*/10 * * * *", func() error { return nil }))
}

func TestRegister_RejectsBadSchedule(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	assert.Error(t, svc.Register("refresh", "not a cron expr", func() error { return nil }))
}

func TestRunAll_ExecutesEveryJobOnce(t *testing.T) {
	svc := NewService(arbor.NewLogger())

	var a, b atomic.Int32
	require.NoError(t, svc.Register("a", "*/5 * * * *", func() error { a.Add(1); return nil }))
	require.NoError(t, svc.Register("b", "*/5 * * * *", func() error { b.Add(1); return errors.New("boom") }))

	svc.RunAll()

	assert.Equal(t, int32(1), a.Load())
	// A failing job is logged, not fatal, and does not stop the others.
	assert.Equal(t, int32(1), b.Load())
}

func TestStartStop(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	require.NoError(t, svc.Register("a", "*/5 * * * *", func() error { return nil }))

	require.NoError(t, svc.Start())
	assert.Error(t, svc.Start())

	svc.Stop()
	// Stopping twice is safe.
	svc.Stop()
}
