package provider

// DictionaryEntry is one entry as reported by an external dictionary.
// Upstream data is untrusted: every optional field is a pointer and is
// normalized in a single place by the lookup service.
type DictionaryEntry struct {
	Word      *string
	Phonetic  *string
	Phonetics []PhoneticResult
	Origin    *string
	Meanings  []MeaningResult
}

// PhoneticResult represents pronunciation data from an external dictionary.
type PhoneticResult struct {
	Text  *string
	Audio *string
}

// MeaningResult groups definitions sharing a part of speech.
type MeaningResult struct {
	PartOfSpeech *string
	Definitions  []DefinitionResult
}

// DefinitionResult represents a single definition from an external dictionary.
type DefinitionResult struct {
	Definition *string
	Example    *string
}
