package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvery_RunsImmediatelyAndOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int32

	done := make(chan struct{})
	go func() {
		Every(ctx, 10*time.Millisecond, "count", func(context.Context) error {
			n.Add(1)
			return errors.New("keeps going")
		})
		close(done)
	}()

	assert.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Every did not return after cancel")
	}
}

func TestEvery_DisabledInterval(t *testing.T) {
	called := false
	Every(context.Background(), 0, "off", func(context.Context) error {
		called = true
		return nil
	})
	assert.False(t, called)
}
