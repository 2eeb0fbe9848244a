// Package signal turns SIGINT and SIGTERM into context cancellation for the
// textsign command. It imports nothing from internal/.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// ExitCodeInterrupted is the exit status after SIGINT (128 + 2).
const ExitCodeInterrupted = 130

// Handler owns a context that is canceled by the first interrupt.
//
//	h := signal.NewHandler(ctx)
//	err := cli.Execute(h.Context(), info)
//	interrupted := h.WasInterrupted()
//	h.Stop()
type Handler struct {
	ctx         context.Context //nolint:containedctx // canceled by the handler itself
	cancel      context.CancelFunc
	sigs        chan os.Signal
	interrupted atomic.Bool
	stopOnce    sync.Once
}

// NewHandler derives a cancelable context from parent and starts watching
// for SIGINT and SIGTERM.
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{ctx: ctx, cancel: cancel, sigs: make(chan os.Signal, 1)}

	signal.Notify(h.sigs, syscall.SIGINT, syscall.SIGTERM)
	go h.watch()
	return h
}

// Context returns the handler's context.
func (h *Handler) Context() context.Context { return h.ctx }

// WasInterrupted reports whether a signal canceled the context.
func (h *Handler) WasInterrupted() bool { return h.interrupted.Load() }

// Stop unregisters the signals and cancels the context. It is idempotent and
// does not count as an interrupt.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigs)
		h.cancel()
	})
}

func (h *Handler) interrupt() {
	h.interrupted.Store(true)
	h.cancel()
}

// watch exits after the first signal or once the context ends.
func (h *Handler) watch() {
	select {
	case <-h.ctx.Done():
	case <-h.sigs:
		h.interrupt()
	}
}
