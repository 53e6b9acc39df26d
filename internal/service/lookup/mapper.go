package lookup

import (
	"github.com/heartmarshall/dictionary-connector/internal/domain"
	"github.com/heartmarshall/dictionary-connector/internal/provider"
)

// maxDefinitionsPerMeaning is how many definitions of each meaning are kept.
const maxDefinitionsPerMeaning = 2

// Simplify normalizes upstream entries into domain entries. It is the only
// place where absent upstream fields are turned into empty strings.
func Simplify(entries []provider.DictionaryEntry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, simplifyEntry(e))
	}
	return out
}

func simplifyEntry(e provider.DictionaryEntry) domain.Entry {
	meanings := make([]domain.Meaning, 0, len(e.Meanings))
	for _, m := range e.Meanings {
		meanings = append(meanings, simplifyMeaning(m))
	}

	return domain.Entry{
		Word:     str(e.Word),
		Phonetic: phonetic(e),
		Origin:   str(e.Origin),
		Meanings: meanings,
	}
}

func simplifyMeaning(m provider.MeaningResult) domain.Meaning {
	defs := m.Definitions
	if len(defs) > maxDefinitionsPerMeaning {
		defs = defs[:maxDefinitionsPerMeaning]
	}

	out := make([]domain.Definition, 0, len(defs))
	for _, d := range defs {
		out = append(out, domain.Definition{
			Definition: str(d.Definition),
			Example:    str(d.Example),
		})
	}

	return domain.Meaning{
		PartOfSpeech: str(m.PartOfSpeech),
		Definitions:  out,
	}
}

// phonetic prefers the entry-level transcription and falls back to the text
// of the first phonetics item only. An empty string counts as absent.
func phonetic(e provider.DictionaryEntry) string {
	if p := str(e.Phonetic); p != "" {
		return p
	}
	if len(e.Phonetics) > 0 {
		return str(e.Phonetics[0].Text)
	}
	return ""
}

// Summarize derives the Summary from the first entry. It returns nil when
// there are no entries.
func Summarize(entries []domain.Entry) *domain.Summary {
	if len(entries) == 0 {
		return nil
	}
	first := entries[0]

	summary := &domain.Summary{
		Word:     first.Word,
		Phonetic: first.Phonetic,
		Raw:      first,
	}
	if len(first.Meanings) > 0 && len(first.Meanings[0].Definitions) > 0 {
		def := first.Meanings[0].Definitions[0]
		summary.Short = def.Definition
		summary.Example = def.Example
	}
	return summary
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
