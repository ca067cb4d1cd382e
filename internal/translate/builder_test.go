package translate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/registry"
)

func sampleRequest(p domain.Provider) domain.Request {
	return domain.Request{
		Provider:       p,
		Credential:     "test-credential",
		Model:          domain.DefaultModel(p),
		TargetLanguage: "French",
		SourceText:     "Good morning",
	}
}

func TestBuildRequest_MethodAndContentType(t *testing.T) {
	reg := registry.Default()

	for _, p := range domain.Providers() {
		t.Run(string(p), func(t *testing.T) {
			httpReq, err := BuildRequest(context.Background(), reg, sampleRequest(p))
			if err != nil {
				t.Fatalf("BuildRequest() error: %v", err)
			}
			if httpReq.Method != http.MethodPost {
				t.Errorf("Method = %s, want POST", httpReq.Method)
			}
			if ct := httpReq.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
		})
	}
}

func TestBuildRequest_AuthHeaders(t *testing.T) {
	reg := registry.Default()

	openAIReq, err := BuildRequest(context.Background(), reg, sampleRequest(domain.ProviderOpenAI))
	if err != nil {
		t.Fatalf("BuildRequest(openai) error: %v", err)
	}
	if got := openAIReq.Header.Get("x-api-key"); got != "test-credential" {
		t.Errorf("openai x-api-key = %q", got)
	}

	anthropicReq, err := BuildRequest(context.Background(), reg, sampleRequest(domain.ProviderAnthropic))
	if err != nil {
		t.Fatalf("BuildRequest(anthropic) error: %v", err)
	}
	if got := anthropicReq.Header.Get("x-api-key"); got != "test-credential" {
		t.Errorf("anthropic x-api-key = %q", got)
	}
	if got := anthropicReq.Header.Get("anthropic-version"); got == "" {
		t.Error("anthropic-version header missing")
	}
}

func TestBuildRequest_GoogleCredentialInBody(t *testing.T) {
	reg := registry.Default()

	httpReq, err := BuildRequest(context.Background(), reg, sampleRequest(domain.ProviderGoogle))
	if err != nil {
		t.Fatalf("BuildRequest(google) error: %v", err)
	}

	// No auth header; the key rides in the JSON body instead.
	if got := httpReq.Header.Get("x-api-key"); got != "" {
		t.Errorf("google request has x-api-key header %q, want none", got)
	}

	raw, err := io.ReadAll(httpReq.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var body struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Key != "test-credential" {
		t.Errorf("body key = %q, want credential", body.Key)
	}

	if !strings.Contains(httpReq.URL.Path, string(domain.DefaultModel(domain.ProviderGoogle))) {
		t.Errorf("google URL path %q does not embed the model", httpReq.URL.Path)
	}
}

func TestBuildRequest_UnsupportedProvider(t *testing.T) {
	req := sampleRequest(domain.ProviderOpenAI)
	req.Provider = domain.Provider("deepl")

	_, err := BuildRequest(context.Background(), registry.Default(), req)
	if err == nil {
		t.Fatal("BuildRequest() succeeded for unknown provider")
	}
	var unsupported *UnsupportedProviderError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %T, want *UnsupportedProviderError", err)
	}
}
