package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/snaplate/snaplate/internal/domain"
)

// Fixed user-facing messages. Every failure path terminates in exactly one
// of these (or a formatted variant); nothing else ever reaches the user.
const (
	MsgEmptyInput  = "No text selected"
	MsgCanceled    = "canceled: request took too long"
	MsgRateLimited = "rate limit exceeded, try again later"
	MsgAuthFailed  = "authentication failed, check API key"
	MsgBadRequest  = "Bad request (400)"
	MsgMalformed   = "unexpected response format"
	MsgNetwork     = "network error, check your internet connection"
	MsgSlowService = "request timed out, the service may be slow"
)

// providerErrorBody is the generic structured error shape probed on 400
// responses. OpenAI and Anthropic send {error:{type,message}}; Google sends
// {error:{message,...}} with no type. One shape covers all three, so there
// is a single parse instead of per-provider branches.
type providerErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Classify converts any failure from the translation core into one
// user-facing message. Precedence is fixed: cancellation first, then
// HTTP-status rules, then message-text matching. Status rules always win
// over text sniffing.
func Classify(p domain.Provider, err error) string {
	if err == nil {
		return ""
	}

	// 1. Time-budget cancellation beats everything else.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return MsgCanceled
	}

	// Pre-send validation failures.
	if IsEmptyInput(err) {
		return MsgEmptyInput
	}
	var missing *MissingCredentialError
	if errors.As(err, &missing) {
		return fmt.Sprintf("missing API key for %s, set it in the settings before translating", missing.Provider.Label())
	}

	// Extraction failures are distinct from transport and status failures.
	if IsMalformedResponse(err) {
		return MsgMalformed
	}

	// 2-5. HTTP status rules, in documented order.
	var status *StatusError
	if errors.As(err, &status) {
		switch {
		case status.Status == http.StatusTooManyRequests:
			return MsgRateLimited
		case status.Status == http.StatusUnauthorized || status.Status == http.StatusForbidden:
			return MsgAuthFailed
		case status.Status == http.StatusBadRequest:
			return classifyBadRequest(status.Body)
		default:
			return fmt.Sprintf("API error: Status code %d", status.Status)
		}
	}

	// 6. No HTTP status: match on the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Network Error"):
		return MsgNetwork
	case strings.Contains(strings.ToLower(msg), "timeout"):
		return MsgSlowService
	}
	if label, ok := mentionedProvider(msg); ok {
		return label + ": " + msg
	}
	return msg
}

// classifyBadRequest probes a 400 body for the generic structured error
// shape. An unparsable body degrades to a plain 400 message instead of
// failing the classifier itself.
func classifyBadRequest(body []byte) string {
	var parsed providerErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error.Message == "" {
		return MsgBadRequest
	}
	if strings.Contains(parsed.Error.Type, "invalid_request") {
		return "Invalid request: " + parsed.Error.Message
	}
	return "API error: " + parsed.Error.Message
}

// mentionedProvider reports whether msg names one of the providers, and
// returns that provider's display label.
func mentionedProvider(msg string) (string, bool) {
	lower := strings.ToLower(msg)
	for _, p := range domain.Providers() {
		if strings.Contains(lower, string(p)) || strings.Contains(lower, strings.ToLower(p.Label())) {
			return p.Label(), true
		}
	}
	return "", false
}
