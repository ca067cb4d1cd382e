package registry

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/snaplate/snaplate/internal/domain"
)

const (
	// DefaultAnthropicBaseURL is the Anthropic API endpoint prefix.
	DefaultAnthropicBaseURL = "https://api.anthropic.com/v1"

	// anthropicVersion is required on every Messages API request.
	anthropicVersion = "2023-06-01"
)

// messagesRequest is the Anthropic Messages API request body. Unlike
// OpenAI, the instruction is a top-level "system" string, not a message.
type messagesRequest struct {
	Model       string        `json:"model"`
	System      string        `json:"system"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// messagesResponse covers only the fields the extractor reads.
type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func anthropicEndpoint() Endpoint {
	return Endpoint{
		Provider: domain.ProviderAnthropic,
		Auth:     domain.AuthInHeader,
		baseURL:  DefaultAnthropicBaseURL,
		buildURL: func(base string, _ domain.ModelName) string {
			return base + "/messages"
		},
		buildHeaders: func(credential string) http.Header {
			h := http.Header{}
			h.Set("x-api-key", credential)
			h.Set("anthropic-version", anthropicVersion)
			return h
		},
		buildBody: func(_ string, model domain.ModelName, lang domain.Language, text string) any {
			return messagesRequest{
				Model:  string(model),
				System: Instruction(lang),
				Messages: []chatMessage{
					{Role: "user", Content: text},
				},
				Temperature: Temperature,
				MaxTokens:   MaxOutputTokens,
			}
		},
		extract: extractAnthropic,
	}
}

func extractAnthropic(p domain.Provider, raw []byte) (string, error) {
	var resp messagesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &MalformedResponseError{Provider: p, Reason: "body is not valid JSON"}
	}
	if len(resp.Content) == 0 {
		return "", &MalformedResponseError{Provider: p, Reason: "content is empty"}
	}
	text := strings.TrimSpace(resp.Content[0].Text)
	if text == "" {
		return "", &MalformedResponseError{Provider: p, Reason: "content[0].text is empty"}
	}
	return text, nil
}
