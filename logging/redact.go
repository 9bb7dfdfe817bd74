// Package logging provides PII redaction for audit and authentication logs.
// No log line carrying a redacted field may leave the process un-filtered.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Redaction is the marker that replaces redacted field values.
const Redaction = "***"

// Separator delimits field=value segments in log messages.
const Separator = ";"

// PIIFields are the field names redacted by default.
var PIIFields = []string{"name", "email", "phone", "ssn", "password"}

// Filter replaces the value of every "field=value" segment in message with
// redaction, for each named field. A value runs from the "=" up to the next
// separator; when no separator follows, the value is redacted through the
// end of the message.
func Filter(fields []string, redaction, message, separator string) string {
	for _, field := range fields {
		key := field + "="
		var out strings.Builder
		rest := message
		for {
			i := strings.Index(rest, key)
			if i < 0 {
				out.WriteString(rest)
				break
			}
			out.WriteString(rest[:i+len(key)])
			out.WriteString(redaction)
			rest = rest[i+len(key):]
			if separator == "" {
				rest = ""
				continue
			}
			if j := strings.Index(rest, separator); j >= 0 {
				rest = rest[j:]
			} else {
				rest = ""
			}
		}
		message = out.String()
	}
	return message
}

// RedactingHandler is a slog.Handler that filters records before delegating
// to an inner handler. Both message segments and attributes whose key names
// a redacted field are replaced with the redaction marker.
type RedactingHandler struct {
	inner     slog.Handler
	fields    []string
	fieldSet  map[string]struct{}
	separator string
}

var _ slog.Handler = (*RedactingHandler)(nil)

func NewRedactingHandler(inner slog.Handler, fields []string) *RedactingHandler {
	fieldSet := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		fieldSet[f] = struct{}{}
	}
	return &RedactingHandler{
		inner:     inner,
		fields:    fields,
		fieldSet:  fieldSet,
		separator: Separator,
	}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	msg := Filter(h.fields, Redaction, record.Message, h.separator)

	filtered := slog.NewRecord(record.Time, record.Level, msg, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		filtered.AddAttrs(h.redactAttr(attr))
		return true
	})

	return h.inner.Handle(ctx, filtered)
}

func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		redacted[i] = h.redactAttr(attr)
	}
	return &RedactingHandler{
		inner:     h.inner.WithAttrs(redacted),
		fields:    h.fields,
		fieldSet:  h.fieldSet,
		separator: h.separator,
	}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{
		inner:     h.inner.WithGroup(name),
		fields:    h.fields,
		fieldSet:  h.fieldSet,
		separator: h.separator,
	}
}

func (h *RedactingHandler) redactAttr(attr slog.Attr) slog.Attr {
	if _, ok := h.fieldSet[attr.Key]; ok {
		return slog.String(attr.Key, Redaction)
	}
	return attr
}

// NewLogger wires a text logger whose output has the default PII fields
// redacted. Process-wide logger configuration happens once at startup;
// there is no implicit singleton and no teardown beyond process exit.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewTextHandler(w, nil), PIIFields))
}
