package engine

import (
	"sort"
	"strings"
)

const (
	// GenreSeparator splits the raw genre field of a movie row.
	GenreSeparator = "|"

	// NoGenresSentinel is the MovieLens marker for a movie without genre
	// data. Such movies carry no signal for content-based similarity and
	// are excluded from the catalog and the vocabulary.
	NoGenresSentinel = "(no genres listed)"
)

// ParseGenres splits a raw genre field into its labels. It returns nil for
// an empty field, the no-genres sentinel, or a field that yields no labels
// after trimming.
func ParseGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NoGenresSentinel {
		return nil
	}
	parts := strings.Split(raw, GenreSeparator)
	labels := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == NoGenresSentinel {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		labels = append(labels, p)
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}

// Vocabulary is the fixed ordered set of distinct genre labels observed in
// the cleaned corpus. The order is lexicographic so that two builds over
// the same rows, in any row order, agree on every vector axis.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// NewVocabulary builds a vocabulary from the genre sets of all surviving
// movies.
func NewVocabulary(genreSets [][]string) *Vocabulary {
	set := make(map[string]struct{})
	for _, genres := range genreSets {
		for _, g := range genres {
			set[g] = struct{}{}
		}
	}
	labels := make([]string, 0, len(set))
	for g := range set {
		labels = append(labels, g)
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, g := range labels {
		index[g] = i
	}
	return &Vocabulary{labels: labels, index: index}
}

// Len returns the vector dimension.
func (v *Vocabulary) Len() int { return len(v.labels) }

// Labels returns a copy of the ordered label list.
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)
	return out
}

// Index returns the axis of a label.
func (v *Vocabulary) Index(label string) (int, bool) {
	i, ok := v.index[label]
	return i, ok
}

// Encode produces the one-hot genre vector of a movie. Labels outside the
// vocabulary are ignored.
func (v *Vocabulary) Encode(genres []string) Vector {
	vec := make(Vector, len(v.labels))
	for _, g := range genres {
		if i, ok := v.index[g]; ok {
			vec[i] = 1
		}
	}
	return vec
}
