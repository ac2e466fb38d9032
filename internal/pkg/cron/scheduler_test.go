package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	s := NewScheduler()
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), ran.Load())
}

func TestScheduler_RunOnce_FailingJobDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	s := NewScheduler()
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), ran.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	s := NewScheduler()
	s.AddJob("ticker", 10*time.Millisecond, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Greater(t, ran.Load(), int32(0))
}
