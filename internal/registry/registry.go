// Package registry holds the static per-provider endpoint descriptors.
// Each descriptor fixes how one provider wants its requests built and how
// its responses are read, so the rest of the core never branches on
// provider identity.
package registry

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/snaplate/snaplate/internal/domain"
)

const (
	// Temperature is the fixed sampling temperature sent to every provider.
	Temperature = 0.3

	// MaxOutputTokens is the fixed response-length cap sent to every
	// provider. The field name on the wire differs per provider but the
	// value is constant.
	MaxOutputTokens = 4096
)

// Endpoint is the immutable recipe for talking to one provider: where to
// send the request, where the credential goes, how the body is shaped, and
// how to pull the translated text out of the response.
type Endpoint struct {
	// Provider this descriptor belongs to.
	Provider domain.Provider

	// Auth says whether the credential travels in a header or inside
	// the JSON body.
	Auth domain.AuthPlacement

	baseURL      string
	buildURL     func(base string, model domain.ModelName) string
	buildHeaders func(credential string) http.Header
	buildBody    func(credential string, model domain.ModelName, lang domain.Language, text string) any
	extract      func(p domain.Provider, raw []byte) (string, error)
}

// URL returns the full request URL for the given model. Most providers use
// a fixed endpoint; Google embeds the model name in the path.
func (e Endpoint) URL(model domain.ModelName) string {
	return e.buildURL(e.baseURL, model)
}

// Headers returns the provider-specific request headers for the credential.
// Content-Type is set by the request builder, not here.
func (e Endpoint) Headers(credential string) http.Header {
	return e.buildHeaders(credential)
}

// Body returns the provider-shaped request body, ready for JSON encoding.
func (e Endpoint) Body(credential string, model domain.ModelName, lang domain.Language, text string) any {
	return e.buildBody(credential, model, lang, text)
}

// Extract navigates the provider's response shape and returns the translated
// string, trimmed of surrounding whitespace. A missing or empty field yields
// a *MalformedResponseError, never a panic.
func (e Endpoint) Extract(raw []byte) (string, error) {
	return e.extract(e.Provider, raw)
}

// MalformedResponseError reports a response body that does not match the
// provider's documented success shape. It is distinct from transport and
// HTTP-status failures.
type MalformedResponseError struct {
	Provider domain.Provider
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: unexpected response format: %s", e.Provider, e.Reason)
}

// Registry maps providers to their endpoint descriptors. It is built once
// and never mutated; overrides produce copies.
type Registry struct {
	endpoints map[domain.Provider]Endpoint
}

// Default returns the registry with the real provider endpoints.
func Default() *Registry {
	return &Registry{
		endpoints: map[domain.Provider]Endpoint{
			domain.ProviderOpenAI:    openAIEndpoint(),
			domain.ProviderAnthropic: anthropicEndpoint(),
			domain.ProviderGoogle:    googleEndpoint(),
		},
	}
}

// Lookup returns the descriptor for p.
func (r *Registry) Lookup(p domain.Provider) (Endpoint, bool) {
	e, ok := r.endpoints[p]
	return e, ok
}

// MustLookup returns the descriptor for p and panics if it is missing.
// The provider enumeration is closed, so a missing entry is a programming
// error, not a runtime condition.
func (r *Registry) MustLookup(p domain.Provider) Endpoint {
	e, ok := r.endpoints[p]
	if !ok {
		panic("registry: no endpoint for provider " + string(p))
	}
	return e
}

// WithBaseURL returns a copy of the registry with one provider's base URL
// replaced. Used by tests to point a provider at a mock server.
func (r *Registry) WithBaseURL(p domain.Provider, base string) *Registry {
	endpoints := make(map[domain.Provider]Endpoint, len(r.endpoints))
	for k, v := range r.endpoints {
		endpoints[k] = v
	}
	if e, ok := endpoints[p]; ok {
		e.baseURL = strings.TrimSuffix(base, "/")
		endpoints[p] = e
	}
	return &Registry{endpoints: endpoints}
}

// Instruction builds the system-style translation instruction shared by all
// providers. The wording is part of the product behavior; change with care.
func Instruction(lang domain.Language) string {
	return fmt.Sprintf(
		"You are a professional translator. Translate the user's text to %s, emphasizing natural expression, clarity, accuracy and fluency. Output the translation only, with no explanations.",
		lang,
	)
}
