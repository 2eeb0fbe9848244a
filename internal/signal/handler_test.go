package signal

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_InterruptCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	assert.False(t, h.WasInterrupted())

	h.interrupt()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.True(t, h.WasInterrupted())
}

func TestHandler_DeliveredSignal(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigs <- syscall.SIGTERM

	select {
	case <-h.Context().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not canceled after a signal")
	}
	assert.True(t, h.WasInterrupted())
}

func TestHandler_RepeatedInterrupts(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	assert.NotPanics(t, func() {
		h.interrupt()
		h.interrupt()
	})
	assert.True(t, h.WasInterrupted())
}

func TestHandler_StopIsNotAnInterrupt(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.False(t, h.WasInterrupted())
}

func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	<-h.Context().Done()
	assert.False(t, h.WasInterrupted())
}
