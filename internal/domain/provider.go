// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

// Provider identifies one of the supported translation backends.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

// Providers lists every supported provider in a stable order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGoogle}
}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name used in user-facing messages.
func (p Provider) Label() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderGoogle:
		return "Google"
	default:
		return string(p)
	}
}

// AuthPlacement says where a provider expects its credential.
// Modeled as data on the endpoint descriptor so call sites never
// branch on provider identity.
type AuthPlacement string

const (
	// AuthInHeader places the credential in a request header.
	AuthInHeader AuthPlacement = "header"

	// AuthInBody embeds the credential in the JSON request body.
	AuthInBody AuthPlacement = "body"
)

// DisplayMode controls what the host does with a successful translation.
type DisplayMode string

const (
	// ModeDisplay only shows the translated text.
	ModeDisplay DisplayMode = "display"

	// ModeDisplayAndCopy shows the text and copies it to the clipboard.
	ModeDisplayAndCopy DisplayMode = "display_and_copy"
)

// Valid reports whether m is a known display mode.
func (m DisplayMode) Valid() bool {
	return m == ModeDisplay || m == ModeDisplayAndCopy
}
