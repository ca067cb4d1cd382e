package translate

import (
	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/registry"
)

// ExtractText pulls the translated string out of a raw success body using
// the provider's response shape. Failures here are extraction failures,
// distinct from transport errors, and classify as an unexpected response
// format rather than an API error.
func ExtractText(reg *registry.Registry, p domain.Provider, raw []byte) (string, error) {
	ep, ok := reg.Lookup(p)
	if !ok {
		return "", &UnsupportedProviderError{Provider: p}
	}
	return ep.Extract(raw)
}
