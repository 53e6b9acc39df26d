package freedict

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/dictionary-connector/internal/provider"
)

// errMalformed reports a 200 body that is not a list of entry objects.
var errMalformed = errors.New("malformed response")

// apiEntry represents a single entry from the FreeDictionary API response.
// The API returns an array of entries (one per etymology). Every field may
// be missing, so strings are decoded into pointers. Nested objects are
// pointers too, so that a JSON null element can be told apart from an
// empty object.
type apiEntry struct {
	Word      *string        `json:"word"`
	Phonetic  *string        `json:"phonetic"`
	Phonetics []*apiPhonetic `json:"phonetics"`
	Origin    *string        `json:"origin"`
	Meanings  []*apiMeaning  `json:"meanings"`
}

// apiPhonetic represents phonetic/pronunciation data from the API.
type apiPhonetic struct {
	Text  *string `json:"text"`
	Audio *string `json:"audio"`
}

// apiMeaning represents a group of definitions sharing a part of speech.
type apiMeaning struct {
	PartOfSpeech *string          `json:"partOfSpeech"`
	Definitions  []*apiDefinition `json:"definitions"`
}

// apiDefinition represents a single definition with an optional example.
type apiDefinition struct {
	Definition *string `json:"definition"`
	Example    *string `json:"example"`
}

// mapAPIResponse converts decoded API entries into provider entries,
// preserving order and absence of fields. A null body or a null entry,
// meaning or definition is rejected with errMalformed. A null phonetics
// item only means its text is absent.
func mapAPIResponse(entries []*apiEntry) ([]provider.DictionaryEntry, error) {
	if entries == nil {
		return nil, fmt.Errorf("%w: body is null", errMalformed)
	}

	result := make([]provider.DictionaryEntry, 0, len(entries))
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: entry %d is null", errMalformed, i)
		}
		meanings, err := mapMeanings(e.Meanings)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		result = append(result, provider.DictionaryEntry{
			Word:      e.Word,
			Phonetic:  e.Phonetic,
			Phonetics: mapPhonetics(e.Phonetics),
			Origin:    e.Origin,
			Meanings:  meanings,
		})
	}
	return result, nil
}

func mapPhonetics(in []*apiPhonetic) []provider.PhoneticResult {
	if in == nil {
		return nil
	}
	out := make([]provider.PhoneticResult, len(in))
	for i, ph := range in {
		if ph != nil {
			out[i] = provider.PhoneticResult{Text: ph.Text, Audio: ph.Audio}
		}
	}
	return out
}

func mapMeanings(in []*apiMeaning) ([]provider.MeaningResult, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]provider.MeaningResult, len(in))
	for i, m := range in {
		if m == nil {
			return nil, fmt.Errorf("%w: meaning %d is null", errMalformed, i)
		}
		defs := make([]provider.DefinitionResult, len(m.Definitions))
		for j, d := range m.Definitions {
			if d == nil {
				return nil, fmt.Errorf("%w: meaning %d definition %d is null", errMalformed, i, j)
			}
			defs[j] = provider.DefinitionResult{Definition: d.Definition, Example: d.Example}
		}
		out[i] = provider.MeaningResult{PartOfSpeech: m.PartOfSpeech, Definitions: defs}
	}
	return out, nil
}
