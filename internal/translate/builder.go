package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/registry"
)

// BuildRequest produces the fully-formed outbound HTTP request for req.
// It is a pure function of its input and the registry: method, URL, headers
// and body all come from the provider's endpoint descriptor.
func BuildRequest(ctx context.Context, reg *registry.Registry, req domain.Request) (*http.Request, error) {
	ep, ok := reg.Lookup(req.Provider)
	if !ok {
		return nil, &UnsupportedProviderError{Provider: req.Provider}
	}

	body := ep.Body(req.Credential, req.Model, req.TargetLanguage, req.SourceText)
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request body: %w", req.Provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL(req.Model), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create http request: %w", req.Provider, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, values := range ep.Headers(req.Credential) {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	return httpReq, nil
}
