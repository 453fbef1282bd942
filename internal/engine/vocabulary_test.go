package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenres(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single genre", "Comedy", []string{"Comedy"}},
		{"multiple genres", "Action|Comedy|Drama", []string{"Action", "Comedy", "Drama"}},
		{"sentinel", "(no genres listed)", nil},
		{"empty field", "", nil},
		{"whitespace only", "   ", nil},
		{"trailing separator", "Action|", []string{"Action"}},
		{"leading separator", "|Action", []string{"Action"}},
		{"duplicate labels", "Action|Action|Comedy", []string{"Action", "Comedy"}},
		{"padded labels", " Action | Comedy ", []string{"Action", "Comedy"}},
		{"only separators", "|||", nil},
		{"sentinel among labels", "Action|(no genres listed)", []string{"Action"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseGenres(tt.raw))
		})
	}
}

func TestVocabularyDeterministicOrder(t *testing.T) {
	a := NewVocabulary([][]string{{"Comedy", "Action"}, {"Drama"}})
	b := NewVocabulary([][]string{{"Drama"}, {"Action"}, {"Comedy", "Action"}})

	require.Equal(t, []string{"Action", "Comedy", "Drama"}, a.Labels())
	require.Equal(t, a.Labels(), b.Labels())
	require.Equal(t, 3, a.Len())
}

func TestVocabularyIndex(t *testing.T) {
	voc := NewVocabulary([][]string{{"Comedy", "Action", "Thriller"}})

	i, ok := voc.Index("Comedy")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = voc.Index("Romance")
	assert.False(t, ok)
}

func TestEncodeOneHot(t *testing.T) {
	voc := NewVocabulary([][]string{{"Action", "Comedy", "Drama"}})

	vec := voc.Encode([]string{"Action", "Drama"})
	require.Len(t, vec, voc.Len())
	assert.Equal(t, Vector{1, 0, 1}, vec)

	for _, x := range vec {
		assert.Contains(t, []float64{0, 1}, x)
	}
}

func TestEncodeIgnoresUnknownLabels(t *testing.T) {
	voc := NewVocabulary([][]string{{"Action"}})

	vec := voc.Encode([]string{"Action", "Romance"})
	assert.Equal(t, Vector{1}, vec)
}
