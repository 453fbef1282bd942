package engine

import (
	"sort"

	"github.com/rs/zerolog"

	"cinematch/pkg/types"
)

// Entry is one catalog movie: its title and one-hot genre vector.
type Entry struct {
	MovieID int
	Title   string
	Vector  Vector
}

// Catalog maps movie id to its entry. It is read-only after BuildCatalog
// returns; queries share it freely.
type Catalog struct {
	entries map[int]Entry
	ids     []int // ascending
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int { return len(c.entries) }

// Get returns the entry for a movie id.
func (c *Catalog) Get(movieID int) (Entry, bool) {
	e, ok := c.entries[movieID]
	return e, ok
}

// IDs returns the movie ids in ascending order. Callers must not mutate
// the returned slice.
func (c *Catalog) IDs() []int { return c.ids }

// BuildCatalog deduplicates raw movie rows by id (first occurrence wins),
// drops movies whose genre field is empty or the sentinel, derives the
// genre vocabulary from the survivors and encodes each of them.
func BuildCatalog(rows []types.MovieRow, logger zerolog.Logger) (*Vocabulary, *Catalog, CleanStats) {
	log := logger.With().Str("component", "catalog").Logger()

	var stats CleanStats
	stats.MoviesTotal = len(rows)

	type pending struct {
		title  string
		genres []string
	}
	order := make([]int, 0, len(rows))
	survivors := make(map[int]pending, len(rows))
	seen := make(map[int]struct{}, len(rows))

	for _, row := range rows {
		if _, dup := seen[row.MovieID]; dup {
			stats.DuplicateMovies++
			log.Debug().Int("movieId", row.MovieID).Msg("duplicate movie row dropped")
			continue
		}
		seen[row.MovieID] = struct{}{}

		genres := ParseGenres(row.Genres)
		if genres == nil {
			stats.NoGenreMovies++
			log.Debug().Int("movieId", row.MovieID).Str("genres", row.Genres).
				Msg("movie without usable genres dropped")
			continue
		}
		survivors[row.MovieID] = pending{title: row.Title, genres: genres}
		order = append(order, row.MovieID)
	}

	genreSets := make([][]string, 0, len(order))
	for _, id := range order {
		genreSets = append(genreSets, survivors[id].genres)
	}
	voc := NewVocabulary(genreSets)

	cat := &Catalog{entries: make(map[int]Entry, len(order)), ids: make([]int, 0, len(order))}
	for _, id := range order {
		p := survivors[id]
		cat.entries[id] = Entry{MovieID: id, Title: p.title, Vector: voc.Encode(p.genres)}
	}
	cat.ids = sortedKeys(cat.entries)

	log.Info().
		Int("movies", cat.Len()).
		Int("genres", voc.Len()).
		Int("dropped_no_genre", stats.NoGenreMovies).
		Int("dropped_duplicates", stats.DuplicateMovies).
		Msg("catalog built")

	return voc, cat, stats
}

func sortedKeys(m map[int]Entry) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
