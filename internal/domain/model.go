package domain

// ModelName identifies a provider-hosted model. It is a pass-through
// value in the request body; the core never interprets it.
type ModelName string

// providerModels lists the selectable models per provider.
var providerModels = map[Provider][]ModelName{
	ProviderOpenAI: {
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
		"gpt-3.5-turbo",
	},
	ProviderAnthropic: {
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
	},
	ProviderGoogle: {
		"gemini-1.5-pro",
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
	},
}

// ModelsFor returns the selectable models for a provider.
func ModelsFor(p Provider) []ModelName {
	models := providerModels[p]
	out := make([]ModelName, len(models))
	copy(out, models)
	return out
}

// DefaultModel returns the first (preferred) model for a provider.
func DefaultModel(p Provider) ModelName {
	if models := providerModels[p]; len(models) > 0 {
		return models[0]
	}
	return ""
}

// ValidModel reports whether model is one of the known models for p.
func ValidModel(p Provider, model ModelName) bool {
	for _, known := range providerModels[p] {
		if known == model {
			return true
		}
	}
	return false
}
