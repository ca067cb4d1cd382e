package translate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/registry"
)

// DefaultTimeout is the wall-clock budget for one translation request.
// When it elapses the in-flight request is actively canceled through its
// context, not merely abandoned client-side.
const DefaultTimeout = 30 * time.Second

// Translator sequences one translation invocation: validate, build, send
// under the time budget, extract. It holds no mutable state across
// invocations; concurrent use is safe.
type Translator struct {
	registry   *registry.Registry
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option is a functional option for configuring a Translator.
type Option func(*Translator)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Translator) {
		t.httpClient = client
	}
}

// WithTimeout overrides the per-invocation time budget.
func WithTimeout(timeout time.Duration) Option {
	return func(t *Translator) {
		if timeout > 0 {
			t.timeout = timeout
		}
	}
}

// WithRegistry replaces the endpoint registry. Tests use this to point
// providers at mock servers.
func WithRegistry(reg *registry.Registry) Option {
	return func(t *Translator) {
		t.registry = reg
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// New creates a Translator with the real provider endpoints and the
// default 30-second budget.
func New(opts ...Option) *Translator {
	t := &Translator{
		registry:   registry.Default(),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate performs one translation. It issues exactly one HTTP request;
// there is no retry and no fallback to another provider. All failures come
// back as typed errors for Classify; none of them escape the core as
// panics.
func (t *Translator) Translate(ctx context.Context, req domain.Request) (string, error) {
	text := strings.TrimSpace(req.SourceText)
	if text == "" {
		return "", ErrEmptyInput
	}
	if strings.TrimSpace(req.Credential) == "" {
		return "", &MissingCredentialError{Provider: req.Provider}
	}
	if !req.Provider.Valid() {
		return "", &UnsupportedProviderError{Provider: req.Provider}
	}
	req.SourceText = text

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	httpReq, err := BuildRequest(ctx, t.registry, req)
	if err != nil {
		return "", err
	}

	t.logger.Debug("sending translation request",
		slog.String("provider", string(req.Provider)),
		slog.String("model", string(req.Model)),
		slog.String("target_language", string(req.TargetLanguage)),
		slog.Int("source_chars", len(text)),
	)

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		// Budget expiry surfaces as the context error so the classifier
		// sees a cancellation, not a generic transport failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	t.logger.Debug("provider responded",
		slog.String("provider", string(req.Provider)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Provider: req.Provider, Status: resp.StatusCode, Body: body}
	}

	return ExtractText(t.registry, req.Provider, body)
}
