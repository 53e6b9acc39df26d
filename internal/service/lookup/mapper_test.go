package lookup

import (
	"testing"

	"github.com/heartmarshall/dictionary-connector/internal/domain"
	"github.com/heartmarshall/dictionary-connector/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestSimplify_DefaultsAbsentFields(t *testing.T) {
	t.Parallel()

	got := Simplify([]provider.DictionaryEntry{{
		Meanings: []provider.MeaningResult{{
			Definitions: []provider.DefinitionResult{{}},
		}},
	}})

	require.Len(t, got, 1)
	assert.Equal(t, domain.Entry{
		Meanings: []domain.Meaning{{
			Definitions: []domain.Definition{{}},
		}},
	}, got[0])
}

func TestSimplify_KeepsFirstTwoDefinitions(t *testing.T) {
	t.Parallel()

	got := Simplify([]provider.DictionaryEntry{{
		Word: ptr("run"),
		Meanings: []provider.MeaningResult{{
			PartOfSpeech: ptr("verb"),
			Definitions: []provider.DefinitionResult{
				{Definition: ptr("To move swiftly."), Example: ptr("She runs daily.")},
				{Definition: ptr("To flee.")},
				{Definition: ptr("To operate."), Example: ptr("The engine runs.")},
			},
		}},
	}})

	require.Len(t, got, 1)
	require.Len(t, got[0].Meanings, 1)
	assert.Equal(t, "verb", got[0].Meanings[0].PartOfSpeech)
	assert.Equal(t, []domain.Definition{
		{Definition: "To move swiftly.", Example: "She runs daily."},
		{Definition: "To flee.", Example: ""},
	}, got[0].Meanings[0].Definitions)
}

func TestSimplify_NilMeaningsBecomeEmpty(t *testing.T) {
	t.Parallel()

	got := Simplify([]provider.DictionaryEntry{{Word: ptr("rare")}})

	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Meanings)
	assert.Empty(t, got[0].Meanings)
}

func TestSimplify_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := Simplify([]provider.DictionaryEntry{{Word: ptr("a")}, {Word: ptr("b")}, {Word: ptr("c")}})

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Word)
	assert.Equal(t, "b", got[1].Word)
	assert.Equal(t, "c", got[2].Word)
}

func TestSimplify_Phonetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry provider.DictionaryEntry
		want  string
	}{
		{
			name:  "entry level wins",
			entry: provider.DictionaryEntry{Phonetic: ptr("/a/"), Phonetics: []provider.PhoneticResult{{Text: ptr("/b/")}}},
			want:  "/a/",
		},
		{
			name:  "falls back to first phonetics text",
			entry: provider.DictionaryEntry{Phonetics: []provider.PhoneticResult{{Text: ptr("/b/")}, {Text: ptr("/c/")}}},
			want:  "/b/",
		},
		{
			name:  "empty entry level falls back",
			entry: provider.DictionaryEntry{Phonetic: ptr(""), Phonetics: []provider.PhoneticResult{{Text: ptr("/b/")}}},
			want:  "/b/",
		},
		{
			name:  "first phonetics without text is not skipped",
			entry: provider.DictionaryEntry{Phonetics: []provider.PhoneticResult{{Audio: ptr("x.mp3")}, {Text: ptr("/c/")}}},
			want:  "",
		},
		{
			name:  "nothing available",
			entry: provider.DictionaryEntry{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Simplify([]provider.DictionaryEntry{tt.entry})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Phonetic)
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]domain.Entry{}))
}

func TestSummarize_UsesFirstEntryOnly(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{
			Word:     "bank",
			Phonetic: "/bæŋk/",
			Meanings: []domain.Meaning{{
				PartOfSpeech: "noun",
				Definitions:  []domain.Definition{{Definition: "A financial institution.", Example: "I went to the bank."}},
			}},
		},
		{
			Word: "bank",
			Meanings: []domain.Meaning{{
				PartOfSpeech: "noun",
				Definitions:  []domain.Definition{{Definition: "The edge of a river."}},
			}},
		},
	}

	got := Summarize(entries)

	require.NotNil(t, got)
	assert.Equal(t, "bank", got.Word)
	assert.Equal(t, "/bæŋk/", got.Phonetic)
	assert.Equal(t, "A financial institution.", got.Short)
	assert.Equal(t, "I went to the bank.", got.Example)
	assert.Equal(t, entries[0], got.Raw)
}

func TestSummarize_MissingMeaningOrDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry domain.Entry
	}{
		{name: "no meanings", entry: domain.Entry{Word: "x", Meanings: []domain.Meaning{}}},
		{name: "meaning without definitions", entry: domain.Entry{Word: "x", Meanings: []domain.Meaning{{PartOfSpeech: "noun", Definitions: []domain.Definition{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Summarize([]domain.Entry{tt.entry})
			require.NotNil(t, got)
			assert.Equal(t, "x", got.Word)
			assert.Empty(t, got.Short)
			assert.Empty(t, got.Example)
		})
	}
}

func TestSummarize_OnlyFirstMeaningIsConsulted(t *testing.T) {
	t.Parallel()

	got := Summarize([]domain.Entry{{
		Word: "x",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "noun", Definitions: []domain.Definition{}},
			{PartOfSpeech: "verb", Definitions: []domain.Definition{{Definition: "later"}}},
		},
	}})

	require.NotNil(t, got)
	assert.Empty(t, got.Short)
}
