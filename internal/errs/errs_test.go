package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestIs_SentinelWithExtra(t *testing.T) {
	sentinel := NewWarn("unknown die")
	err := fmt.Errorf("toggle: %w", sentinel.With("d7"))
	if !errors.Is(err, sentinel) {
		t.Error("Expected error with extra to match its sentinel")
	}
	if errors.Is(err, NewFatal("unknown die")) {
		t.Error("Expected level mismatch not to match")
	}
	if sentinel.Extra != "" {
		t.Error("With must not modify the sentinel")
	}
}

func TestWrap_KeepsLevel(t *testing.T) {
	w := Wrap(NewWarn("bad set"), "load set")
	if w.Lv != Warn {
		t.Errorf("Expected warn, got %s", w.Lv)
	}
	f := Wrap(io.ErrUnexpectedEOF, "read config")
	if f.Lv != Fatal {
		t.Errorf("Expected fatal, got %s", f.Lv)
	}
	if !errors.Is(f, io.ErrUnexpectedEOF) {
		t.Error("Expected cause reachable through Unwrap")
	}
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewWarn("bad delta"), "bad delta"},
		{NewWarn("unknown die").With("d7"), "unknown die: d7"},
		{Wrap(io.EOF, "decode"), "decode (cause: EOF)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestAsErr(t *testing.T) {
	if _, ok := AsErr(io.EOF); ok {
		t.Error("Expected plain error not to be *E")
	}
	e, ok := AsErr(fmt.Errorf("x: %w", Warnf("n=%d", 3)))
	if !ok || e.Message != "n=3" || e.Lv != Warn {
		t.Errorf("Unexpected %+v", e)
	}
}
