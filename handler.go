package trace

import (
	"context"
	"strings"

	"golang.org/x/exp/slog"
)

// slogFuncs prefixes the qualified names of slog frames between a logging call and
// [Handler.Handle].
const slogFuncs = "golang.org/x/exp/slog."

// HANDLER

// Handler is a [slog.Handler] that prints records through a [Tracer].
// Each record becomes one traced line:
//
//	LEVEL message key=value ...
//
// Records are indented by the stack of the logging call, with slog's own frames left out.
// Frames are kept from the one at the record's PC; records without a PC drop frames of
// package slog.
type Handler struct {
	t     *Tracer
	ref   slog.Leveler
	scope string

	// preformatted attrs
	attrText string
}

// Handler returns a [Handler] printing through the tracer.
// Records below ref are discarded; a nil ref means [slog.LevelInfo].
func (t *Tracer) Handler(ref slog.Leveler) *Handler {
	if ref == nil {
		ref = slog.LevelInfo
	}
	return &Handler{t: t, ref: ref}
}

// Logger returns a [slog.Logger] over t.Handler(nil).
func (t *Tracer) Logger() *slog.Logger {
	return slog.New(t.Handler(nil))
}

// Enabled reports whether the [Handler] is enabled for logging at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.ref.Level()
}

// See [slog.Handler.WithAttrs].
func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	if len(as) == 0 {
		return h
	}

	h2 := *h

	var b strings.Builder
	b.WriteString(h.attrText)
	for _, a := range as {
		encAttr(&b, h.scope, a)
	}
	h2.attrText = b.String()

	return &h2
}

// See [slog.Handler.WithGroup].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.scope = h.scope + name + "."
	return &h2
}

// Handle prints r as one traced line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrText)

	r.Attrs(func(a slog.Attr) bool {
		encAttr(&b, h.scope, a)
		return true
	})

	h.t.output(1, b.String(), "", skip{resume: funcForPC(r.PC), trim: slogFuncs})
	return nil
}

func encAttr(b *strings.Builder, scope string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			scope = scope + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			encAttr(b, scope, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(scope)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
