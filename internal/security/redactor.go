// Package security provides data leakage prevention utilities. Credentials
// are read-only external inputs and must never reach log output.
package security

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// Placeholder substituted for anything that looks like a credential.
const Placeholder = "[REDACTED]"

// keyPatterns match the credential formats of the supported providers,
// plus generic shapes that tend to be secrets.
var keyPatterns = []*regexp.Regexp{
	// Anthropic keys: sk-ant-... (must run before the generic sk- pattern)
	regexp.MustCompile(`sk-ant-[a-zA-Z0-9_-]{20,}`),
	// OpenAI keys: sk-...
	regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),
	// Google AI keys: AIza...
	regexp.MustCompile(`AIza[a-zA-Z0-9_-]{30,}`),
	// Credentials embedded in request bodies or query strings: key=... / "key":"..."
	regexp.MustCompile(`(?i)("?key"?\s*[:=]\s*"?)[a-zA-Z0-9_-]{20,}`),
	// Long opaque tokens
	regexp.MustCompile(`[a-zA-Z0-9_-]{40,}`),
}

// sensitiveKeys are attribute names whose values are always redacted
// outright, regardless of shape.
var sensitiveKeys = []string{
	"api_key", "apikey", "api-key", "x-api-key",
	"credential", "secret", "token", "authorization",
}

// Redact replaces credential-shaped substrings in s with the placeholder.
func Redact(s string) string {
	out := s
	for _, p := range keyPatterns {
		out = p.ReplaceAllString(out, Placeholder)
	}
	return out
}

// MaskCredential returns a short masked form of a key, keeping just enough
// of the ends to identify it: xxxx...xxxx.
func MaskCredential(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// Handler wraps an slog.Handler and redacts sensitive data from every
// record that passes through it.
type Handler struct {
	inner slog.Handler
}

// NewHandler wraps inner with credential redaction.
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.Record{
		Time:    r.Time,
		Message: Redact(r.Message),
		Level:   r.Level,
		PC:      r.PC,
	}
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redactAttr(a))
		return true
	})
	return h.inner.Handle(ctx, clean)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = redactAttr(a)
	}
	return &Handler{inner: h.inner.WithAttrs(clean)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}

func redactAttr(a slog.Attr) slog.Attr {
	if isSensitiveKey(strings.ToLower(a.Key)) {
		return slog.String(a.Key, Placeholder)
	}
	if s, ok := a.Value.Any().(string); ok {
		return slog.String(a.Key, Redact(s))
	}
	return a
}

func isSensitiveKey(key string) bool {
	for _, k := range sensitiveKeys {
		if strings.Contains(key, k) {
			return true
		}
	}
	return false
}
