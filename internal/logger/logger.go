// Package logger builds the slog loggers used by the server and the CLI.
//
// A Mode picks the handler: dev writes debug-level text to stderr, prod
// writes info-level JSON to stdout, silence drops everything. Any handler can
// be made non-blocking with NewAsyncHandler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

type Mode uint8

const (
	ModeDev Mode = iota
	ModeProd
	ModeSilence
)

// ParseMode maps a config string to a Mode. Unknown values fall back to dev.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production", "json":
		return ModeProd
	case "silence", "silent", "off":
		return ModeSilence
	default:
		return ModeDev
	}
}

func (m Mode) String() string {
	switch m {
	case ModeProd:
		return "prod"
	case ModeSilence:
		return "silence"
	default:
		return "dev"
	}
}

// New returns a synchronous logger for mode.
func New(mode Mode) *slog.Logger {
	return slog.New(Handler(mode, nil))
}

// NewAsync returns a logger whose writes go through an AsyncHandler, plus
// the handler so the caller can Close it on shutdown.
func NewAsync(buf int, mode Mode) (*slog.Logger, *AsyncHandler) {
	ah := NewAsyncHandler(Handler(mode, nil), buf)
	return slog.New(ah), ah
}

// Handler builds the handler for mode. A nil w means the mode's default
// destination.
func Handler(mode Mode, w io.Writer) slog.Handler {
	switch mode {
	case ModeProd:
		if w == nil {
			w = os.Stdout
		}
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	default:
		if w == nil {
			w = os.Stderr
		}
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// AsyncHandler queues records on a channel and writes them from a single
// goroutine. When the queue is full records are dropped and counted.
type AsyncHandler struct {
	next slog.Handler
	d    *dispatcher
}

type dispatcher struct {
	ch      chan item
	closed  chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type item struct {
	ctx context.Context
	rec slog.Record
	h   slog.Handler
}

func NewAsyncHandler(next slog.Handler, buf int) *AsyncHandler {
	if next == nil {
		next = Handler(ModeDev, nil)
	}
	if buf <= 0 {
		buf = 1024
	}
	d := &dispatcher{
		ch:     make(chan item, buf),
		closed: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()
	return &AsyncHandler{next: next, d: d}
}

func (d *dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case it := <-d.ch:
			_ = it.h.Handle(it.ctx, it.rec)
		case <-d.closed:
			for {
				select {
				case it := <-d.ch:
					_ = it.h.Handle(it.ctx, it.rec)
				default:
					return
				}
			}
		}
	}
}

// Dropped returns how many records were discarded.
func (h *AsyncHandler) Dropped() uint64 {
	return h.d.dropped.Load()
}

// Close stops accepting records and drains the queue.
func (h *AsyncHandler) Close() {
	h.d.once.Do(func() { close(h.d.closed) })
	h.d.wg.Wait()
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	select {
	case <-h.d.closed:
		h.d.dropped.Add(1)
		return nil
	default:
	}
	select {
	case h.d.ch <- item{ctx: ctx, rec: r.Clone(), h: h.next}:
	default:
		h.d.dropped.Add(1)
	}
	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), d: h.d}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), d: h.d}
}
