package registry

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/snaplate/snaplate/internal/domain"
)

// DefaultGoogleBaseURL is the Gemini API endpoint prefix.
const DefaultGoogleBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// generateContentRequest is the Gemini generateContent request body.
// Gemini has no separate system-role concept, so the instruction and the
// source text are concatenated into a single content part. The credential
// rides in the body as "key" rather than in a header.
type generateContentRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generation_config"`
	Key              string            `json:"key"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateContentResponse covers only the fields the extractor reads.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func googleEndpoint() Endpoint {
	return Endpoint{
		Provider: domain.ProviderGoogle,
		Auth:     domain.AuthInBody,
		baseURL:  DefaultGoogleBaseURL,
		buildURL: func(base string, model domain.ModelName) string {
			// Model name is part of the path, unlike the other providers.
			return fmt.Sprintf("%s/models/%s:generateContent", base, model)
		},
		buildHeaders: func(_ string) http.Header {
			return http.Header{}
		},
		buildBody: func(credential string, _ domain.ModelName, lang domain.Language, text string) any {
			prompt := Instruction(lang) + "\n\nTranslate the following text:\n\n" + text
			return generateContentRequest{
				Contents: []generateContent{
					{Parts: []generatePart{{Text: prompt}}},
				},
				GenerationConfig: generationConfig{
					Temperature:     Temperature,
					MaxOutputTokens: MaxOutputTokens,
				},
				Key: credential,
			}
		},
		extract: extractGoogle,
	}
}

func extractGoogle(p domain.Provider, raw []byte) (string, error) {
	var resp generateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &MalformedResponseError{Provider: p, Reason: "body is not valid JSON"}
	}
	if len(resp.Candidates) == 0 {
		return "", &MalformedResponseError{Provider: p, Reason: "candidates is empty"}
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &MalformedResponseError{Provider: p, Reason: "candidates[0].content.parts is empty"}
	}
	text := strings.TrimSpace(parts[0].Text)
	if text == "" {
		return "", &MalformedResponseError{Provider: p, Reason: "candidates[0].content.parts[0].text is empty"}
	}
	return text, nil
}
