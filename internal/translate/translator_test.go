package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/registry"
)

// newMockProvider returns an httptest server running handler and a counter
// of requests it received.
func newMockProvider(handler http.HandlerFunc) (*httptest.Server, *int32) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	return srv, &calls
}

func mockedTranslator(p domain.Provider, baseURL string, opts ...Option) *Translator {
	opts = append([]Option{
		WithRegistry(registry.Default().WithBaseURL(p, baseURL)),
	}, opts...)
	return New(opts...)
}

func TestTranslate_Success_TrimsExtractedText(t *testing.T) {
	srv, calls := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":" 你好 "}}]}`))
	})
	defer srv.Close()

	tr := mockedTranslator(domain.ProviderOpenAI, srv.URL)
	got, err := tr.Translate(context.Background(), sampleRequest(domain.ProviderOpenAI))
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if got != "你好" {
		t.Errorf("Translate() = %q, want %q", got, "你好")
	}
	if n := atomic.LoadInt32(calls); n != 1 {
		t.Errorf("provider calls = %d, want exactly 1", n)
	}
}

func TestTranslate_EmptyInput_NoRequestSent(t *testing.T) {
	srv, calls := newMockProvider(func(w http.ResponseWriter, r *http.Request) {})
	defer srv.Close()

	tr := mockedTranslator(domain.ProviderOpenAI, srv.URL)
	req := sampleRequest(domain.ProviderOpenAI)
	req.SourceText = "   \n\t  "

	_, err := tr.Translate(context.Background(), req)
	if !IsEmptyInput(err) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
	if n := atomic.LoadInt32(calls); n != 0 {
		t.Errorf("provider calls = %d, want 0 for blank input", n)
	}
}

func TestTranslate_MissingCredential_NoRequestSent(t *testing.T) {
	srv, calls := newMockProvider(func(w http.ResponseWriter, r *http.Request) {})
	defer srv.Close()

	tr := mockedTranslator(domain.ProviderAnthropic, srv.URL)
	req := sampleRequest(domain.ProviderAnthropic)
	req.Credential = ""

	_, err := tr.Translate(context.Background(), req)
	if !IsMissingCredential(err) {
		t.Errorf("error = %v, want *MissingCredentialError", err)
	}
	if n := atomic.LoadInt32(calls); n != 0 {
		t.Errorf("provider calls = %d, want 0 for missing credential", n)
	}

	msg := Classify(req.Provider, err)
	if msg != "missing API key for Anthropic, set it in the settings before translating" {
		t.Errorf("classified message = %q, must name the provider", msg)
	}
}

func TestTranslate_Status401_ClassifiesAsAuthFailure(t *testing.T) {
	srv, _ := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	})
	defer srv.Close()

	for _, p := range domain.Providers() {
		t.Run(string(p), func(t *testing.T) {
			tr := mockedTranslator(p, srv.URL)
			_, err := tr.Translate(context.Background(), sampleRequest(p))
			if err == nil {
				t.Fatal("Translate() succeeded on 401")
			}
			if got := Classify(p, err); got != MsgAuthFailed {
				t.Errorf("Classify() = %q, want %q regardless of provider", got, MsgAuthFailed)
			}
		})
	}
}

func TestTranslate_MalformedSuccessBody(t *testing.T) {
	srv, _ := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	tr := mockedTranslator(domain.ProviderOpenAI, srv.URL)
	_, err := tr.Translate(context.Background(), sampleRequest(domain.ProviderOpenAI))
	if !IsMalformedResponse(err) {
		t.Fatalf("error = %v, want malformed-response failure", err)
	}
	if got := Classify(domain.ProviderOpenAI, err); got != MsgMalformed {
		t.Errorf("Classify() = %q, want %q", got, MsgMalformed)
	}
}

func TestTranslate_BudgetExpiry_CancelsInFlightRequest(t *testing.T) {
	release := make(chan struct{})
	canceled := make(chan struct{})

	srv, calls := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			// The client actively canceled the request when the budget
			// elapsed; it was not just abandoned.
			close(canceled)
		case <-release:
		}
	})
	defer srv.Close()
	defer close(release)

	tr := mockedTranslator(domain.ProviderGoogle, srv.URL, WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := tr.Translate(context.Background(), sampleRequest(domain.ProviderGoogle))
	if err == nil {
		t.Fatal("Translate() succeeded, want cancellation")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Translate() blocked %v, budget not enforced", elapsed)
	}
	if got := Classify(domain.ProviderGoogle, err); got != MsgCanceled {
		t.Errorf("Classify() = %q, want %q", got, MsgCanceled)
	}

	select {
	case <-canceled:
	case <-time.After(2 * time.Second):
		t.Error("provider never observed the cancellation")
	}

	if n := atomic.LoadInt32(calls); n != 1 {
		t.Errorf("provider calls = %d, want exactly 1 (no retry after cancellation)", n)
	}
}

func TestTranslate_NoRetryOnFailure(t *testing.T) {
	srv, calls := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down"}}`))
	})
	defer srv.Close()

	tr := mockedTranslator(domain.ProviderOpenAI, srv.URL)
	_, err := tr.Translate(context.Background(), sampleRequest(domain.ProviderOpenAI))
	if err == nil {
		t.Fatal("Translate() succeeded on 429")
	}
	if got := Classify(domain.ProviderOpenAI, err); got != MsgRateLimited {
		t.Errorf("Classify() = %q, want %q", got, MsgRateLimited)
	}
	if n := atomic.LoadInt32(calls); n != 1 {
		t.Errorf("provider calls = %d, want exactly 1 (never retries)", n)
	}
}

// fakePresenter records delivered outcomes.
type fakePresenter struct {
	shown   []string
	copied  []string
	copyErr error
}

func (f *fakePresenter) ShowText(text string) { f.shown = append(f.shown, text) }
func (f *fakePresenter) CopyText(text string) error {
	f.copied = append(f.copied, text)
	return f.copyErr
}

func TestRun_DeliversExactlyOneOutcome(t *testing.T) {
	srv, _ := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"Bonjour"}}]}`))
	})
	defer srv.Close()

	tests := []struct {
		name     string
		mode     domain.DisplayMode
		wantCopy bool
	}{
		{"display only leaves clipboard untouched", domain.ModeDisplay, false},
		{"display and copy touches clipboard", domain.ModeDisplayAndCopy, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mockedTranslator(domain.ProviderOpenAI, srv.URL)
			p := &fakePresenter{}

			Run(context.Background(), tr, sampleRequest(domain.ProviderOpenAI), tt.mode, p)

			if len(p.shown) != 1 || p.shown[0] != "Bonjour" {
				t.Errorf("shown = %v, want exactly [Bonjour]", p.shown)
			}
			if tt.wantCopy && (len(p.copied) != 1 || p.copied[0] != "Bonjour") {
				t.Errorf("copied = %v, want [Bonjour]", p.copied)
			}
			if !tt.wantCopy && len(p.copied) != 0 {
				t.Errorf("copied = %v, want clipboard untouched", p.copied)
			}
		})
	}
}

func TestRun_FailureShowsMessageAndSkipsClipboard(t *testing.T) {
	srv, _ := newMockProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	tr := mockedTranslator(domain.ProviderOpenAI, srv.URL)
	p := &fakePresenter{}

	Run(context.Background(), tr, sampleRequest(domain.ProviderOpenAI), domain.ModeDisplayAndCopy, p)

	if len(p.shown) != 1 || p.shown[0] != MsgAuthFailed {
		t.Errorf("shown = %v, want exactly [%s]", p.shown, MsgAuthFailed)
	}
	if len(p.copied) != 0 {
		t.Errorf("copied = %v, failures must never reach the clipboard", p.copied)
	}
}
