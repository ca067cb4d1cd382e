package domain

// Language is one of the fixed target-language names offered to the user.
type Language string

// languages is the closed set of selectable target languages.
var languages = []Language{
	"English",
	"Simplified Chinese",
	"Traditional Chinese",
	"Japanese",
	"Korean",
	"French",
	"German",
	"Spanish",
	"Portuguese",
	"Italian",
	"Russian",
	"Arabic",
	"Hindi",
	"Thai",
	"Vietnamese",
	"Indonesian",
	"Turkish",
	"Dutch",
}

// Languages returns the selectable target languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ValidLanguage reports whether l is one of the fixed target languages.
func ValidLanguage(l Language) bool {
	for _, known := range languages {
		if known == l {
			return true
		}
	}
	return false
}
