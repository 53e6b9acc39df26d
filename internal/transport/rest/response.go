package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/dictionary-connector/internal/domain"
)

type rootResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type failureResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}

// defineResponse is the success envelope of /define. Result is omitted when
// the upstream returned no entries.
type defineResponse struct {
	Success bool             `json:"success"`
	Result  *summaryResponse `json:"result,omitempty"`
}

type summaryResponse struct {
	Word     string        `json:"word"`
	Phonetic string        `json:"phonetic"`
	Short    string        `json:"short"`
	Example  string        `json:"example"`
	Raw      entryResponse `json:"raw"`
}

type entryResponse struct {
	Word     string            `json:"word"`
	Phonetic string            `json:"phonetic"`
	Origin   string            `json:"origin"`
	Meanings []meaningResponse `json:"meanings"`
}

type meaningResponse struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []definitionResponse `json:"definitions"`
}

type definitionResponse struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

func toSummaryResponse(s *domain.Summary) *summaryResponse {
	if s == nil {
		return nil
	}
	return &summaryResponse{
		Word:     s.Word,
		Phonetic: s.Phonetic,
		Short:    s.Short,
		Example:  s.Example,
		Raw:      toEntryResponse(s.Raw),
	}
}

func toEntryResponse(e domain.Entry) entryResponse {
	meanings := make([]meaningResponse, 0, len(e.Meanings))
	for _, m := range e.Meanings {
		defs := make([]definitionResponse, 0, len(m.Definitions))
		for _, d := range m.Definitions {
			defs = append(defs, definitionResponse{Definition: d.Definition, Example: d.Example})
		}
		meanings = append(meanings, meaningResponse{PartOfSpeech: m.PartOfSpeech, Definitions: defs})
	}
	return entryResponse{
		Word:     e.Word,
		Phonetic: e.Phonetic,
		Origin:   e.Origin,
		Meanings: meanings,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
