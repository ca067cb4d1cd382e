package domain

// Request carries everything needed for a single translation invocation.
// It is assembled once by the caller and never mutated by the core.
type Request struct {
	// Provider selects the translation backend.
	Provider Provider

	// Credential is the provider-scoped API key. It is never logged
	// and never persisted by the core.
	Credential string

	// Model is the provider-specific model identifier.
	Model ModelName

	// TargetLanguage is the language to translate into.
	TargetLanguage Language

	// SourceText is the user-selected text to translate.
	SourceText string
}
