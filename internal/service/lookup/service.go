package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dictionary-connector/internal/domain"
	"github.com/heartmarshall/dictionary-connector/internal/provider"
)

// Lookup outcomes reported to the observer.
const (
	OutcomeFound    = "found"
	OutcomeEmpty    = "empty"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type dictionaryProvider interface {
	FetchEntries(ctx context.Context, word string) ([]provider.DictionaryEntry, error)
}

type lookupObserver interface {
	ObserveLookup(outcome string)
}

// Service looks a word up in the external dictionary and summarizes the result.
type Service struct {
	log  *slog.Logger
	dict dictionaryProvider
	obs  lookupObserver
}

// NewService creates a lookup Service. obs may be nil.
func NewService(logger *slog.Logger, dict dictionaryProvider, obs lookupObserver) *Service {
	return &Service{
		log:  logger.With("service", "lookup"),
		dict: dict,
		obs:  obs,
	}
}

// Lookup fetches the entries for word and returns the Summary of the first
// one. The caller is responsible for rejecting empty words.
//
// A successful upstream response without entries yields (nil, nil): this is
// not a not-found. Errors wrap domain.ErrNotFound for an upstream 404 and
// domain.ErrUpstream for every other failure.
func (s *Service) Lookup(ctx context.Context, word string) (*domain.Summary, error) {
	entries, err := s.dict.FetchEntries(ctx, word)
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, domain.ErrNotFound) {
			outcome = OutcomeNotFound
		}
		s.observe(outcome)
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}

	summary := Summarize(Simplify(entries))
	if summary == nil {
		s.observe(OutcomeEmpty)
		s.log.InfoContext(ctx, "upstream returned no entries", slog.String("word", word))
		return nil, nil
	}

	s.observe(OutcomeFound)
	return summary, nil
}

func (s *Service) observe(outcome string) {
	if s.obs != nil {
		s.obs.ObserveLookup(outcome)
	}
}
