package registry

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/snaplate/snaplate/internal/domain"
)

// DefaultOpenAIBaseURL is the OpenAI API endpoint prefix.
const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// chatCompletionRequest is the OpenAI chat-completions request body.
// The instruction travels as a distinct "system" role message.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse covers only the fields the extractor reads.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func openAIEndpoint() Endpoint {
	return Endpoint{
		Provider: domain.ProviderOpenAI,
		Auth:     domain.AuthInHeader,
		baseURL:  DefaultOpenAIBaseURL,
		buildURL: func(base string, _ domain.ModelName) string {
			return base + "/chat/completions"
		},
		buildHeaders: func(credential string) http.Header {
			h := http.Header{}
			h.Set("x-api-key", credential)
			return h
		},
		buildBody: func(_ string, model domain.ModelName, lang domain.Language, text string) any {
			return chatCompletionRequest{
				Model: string(model),
				Messages: []chatMessage{
					{Role: "system", Content: Instruction(lang)},
					{Role: "user", Content: text},
				},
				Temperature: Temperature,
				MaxTokens:   MaxOutputTokens,
			}
		},
		extract: extractOpenAI,
	}
}

func extractOpenAI(p domain.Provider, raw []byte) (string, error) {
	var resp chatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &MalformedResponseError{Provider: p, Reason: "body is not valid JSON"}
	}
	if len(resp.Choices) == 0 {
		return "", &MalformedResponseError{Provider: p, Reason: "choices is empty"}
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &MalformedResponseError{Provider: p, Reason: "choices[0].message.content is empty"}
	}
	return content, nil
}
