package extract

// Locale holds the locale-specific matching strategy for the extraction
// engine: phone number shapes, the known-city reference list, and the filler
// words excluded from the trailing-address fallback. Patterns are injected so
// the engine can be reused for other locales without modification.
type Locale struct {
	Name string

	// PhonePatterns are regex alternatives for the local mobile-number
	// format, tried as a single alternation; the first match in the text
	// wins.
	PhonePatterns []string

	// Cities is the static, ordered known-city reference list. Used for
	// recognition only, not validation; the first list entry found anywhere
	// in the text (case-insensitive) is taken as the address.
	Cities []string

	// FillerWords are rejected as a trailing-address guess.
	FillerWords []string
}

// DefaultLocale is the locale used when none is chosen explicitly.
func DefaultLocale() Locale {
	return Myanmar()
}

// Myanmar is the locale the original OrderKyat tool ships with.
func Myanmar() Locale {
	return Locale{
		Name: "my-MM",
		PhonePatterns: []string{
			`\+?959\d{7,9}`,
			`09\d{7,9}`,
		},
		Cities: []string{
			"Yangon",
			"Mandalay",
			"Naypyidaw",
			"Bago",
			"Mawlamyine",
			"Pathein",
			"Monywa",
			"Sittwe",
			"Taunggyi",
			"Meiktila",
			"Myitkyina",
			"Dawei",
			"Pyay",
			"Hpa-An",
			"Lashio",
			"Magway",
			"Myeik",
			"Loikaw",
			"Hakha",
			"Pakokku",
		},
		FillerWords: []string{"and", "or", "with", "plus"},
	}
}
