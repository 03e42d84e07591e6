// Package errs provides the leveled error type shared by the dice engine and
// the HTTP layer. The level tells the boundary how serious a failure is:
// Warn is a bad request, Fatal is a server-side problem.
package errs

import (
	"errors"
	"fmt"
)

// Level grades an error.
type Level uint8

const (
	None Level = iota
	Fatal
	Warn
)

var levelNames = map[Level]string{
	None:  "",
	Fatal: "fatal",
	Warn:  "warn",
}

func (l Level) String() string {
	return levelNames[l]
}

// E is the error type. Message is the main text, Extra optional context and
// Cause the wrapped lower-level error.
type E struct {
	Message string
	Extra   string
	Cause   error
	Lv      Level
}

func (e *E) Error() string {
	base := e.Message
	if e.Extra != "" {
		base += ": " + e.Extra
	}
	if e.Cause != nil {
		base += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return base
}

// Unwrap lets errors.Is and errors.As see the cause.
func (e *E) Unwrap() error { return e.Cause }

// Is matches sentinel errors by level and message so that a sentinel with
// Extra attached still compares equal to the bare sentinel.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Extra == "" && t.Cause == nil && e.Lv == t.Lv && e.Message == t.Message
}

func New(lv Level, msg string) *E {
	return &E{Message: msg, Lv: lv}
}

func NewWarn(msg string) *E {
	return New(Warn, msg)
}

func NewFatal(msg string) *E {
	return New(Fatal, msg)
}

func Warnf(format string, a ...any) *E {
	return NewWarn(fmt.Sprintf(format, a...))
}

func Fatalf(format string, a ...any) *E {
	return NewFatal(fmt.Sprintf(format, a...))
}

// With returns a copy of e carrying extra context.
func (e *E) With(extra string) *E {
	c := *e
	c.Extra = extra
	return &c
}

// Wrap wraps cause with msg. A cause that is already an *E keeps its level;
// anything else (stdlib, third-party) is treated as Fatal.
func Wrap(cause error, msg string) *E {
	lv := Fatal
	var e *E
	if errors.As(cause, &e) {
		lv = e.Lv
	}
	return &E{Message: msg, Cause: cause, Lv: lv}
}

// AsErr reports whether err carries an *E and returns it.
func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
