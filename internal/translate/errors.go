// Package translate implements the translation core: building provider
// requests, sending them under a time budget, extracting the translated
// text, and classifying failures into user-facing messages.
package translate

import (
	"errors"
	"fmt"

	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/registry"
)

// ErrEmptyInput reports that the selected text is blank after trimming.
// No request is sent in this case.
var ErrEmptyInput = errors.New("no text selected")

// MissingCredentialError reports a blank API key for the selected provider.
// No request is sent in this case.
type MissingCredentialError struct {
	Provider domain.Provider
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing API key for %s", e.Provider.Label())
}

// UnsupportedProviderError reports a provider outside the closed
// enumeration. Validated configuration makes this unreachable; it exists
// as a defensive boundary.
type UnsupportedProviderError struct {
	Provider domain.Provider
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q", string(e.Provider))
}

// StatusError reports a non-2xx HTTP response from a provider. Body holds
// the raw response so the classifier can probe for a structured error.
type StatusError struct {
	Provider domain.Provider
	Status   int
	Body     []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Status)
}

// IsEmptyInput reports whether err is the blank-input failure.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsMissingCredential reports whether err is a blank-credential failure.
func IsMissingCredential(err error) bool {
	var target *MissingCredentialError
	return errors.As(err, &target)
}

// IsMalformedResponse reports whether err came from the response extractor
// rather than the transport or the HTTP status.
func IsMalformedResponse(err error) bool {
	var target *registry.MalformedResponseError
	return errors.As(err, &target)
}
