package domain

// Entry is a simplified dictionary entry. Absent upstream fields are already
// normalized to empty strings and empty slices.
type Entry struct {
	Word     string
	Phonetic string
	Origin   string
	Meanings []Meaning
}

// Meaning groups the kept definitions of one part of speech.
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is a single definition with an optional usage example.
type Definition struct {
	Definition string
	Example    string
}

// Summary is the lookup result returned to API clients. It covers only the
// first sense of the first entry; Raw holds that whole entry.
type Summary struct {
	Word     string
	Phonetic string
	Short    string
	Example  string
	Raw      Entry
}
