package engine

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cinematch/pkg/types"
)

var (
	// ErrEmptyCatalog means no movie with usable genres survived cleaning.
	ErrEmptyCatalog = errors.New("engine: no movies with genres survived cleaning")

	// ErrNoRatings means no rating event survived cleaning.
	ErrNoRatings = errors.New("engine: no usable rating events after cleaning")
)

// CleanStats counts what the cleaning stages dropped. Everything counted
// here was recovered locally; none of it aborts a build.
type CleanStats struct {
	MoviesTotal      int
	DuplicateMovies  int
	NoGenreMovies    int
	RatingsTotal     int
	DanglingRatings  int
	DuplicateRatings int
	ZeroMassUsers    int
}

func (s *CleanStats) merge(o CleanStats) {
	s.MoviesTotal += o.MoviesTotal
	s.DuplicateMovies += o.DuplicateMovies
	s.NoGenreMovies += o.NoGenreMovies
	s.RatingsTotal += o.RatingsTotal
	s.DanglingRatings += o.DanglingRatings
	s.DuplicateRatings += o.DuplicateRatings
	s.ZeroMassUsers += o.ZeroMassUsers
}

// Model is the immutable result of a build: the vocabulary, the catalog,
// one profile per user with positive rating mass, and the exact per-user
// exclusion sets taken from the raw events. Queries share a Model freely;
// when the underlying ratings change the Model is rebuilt wholesale, never
// mutated.
type Model struct {
	BuildID    string
	Vocabulary *Vocabulary
	Catalog    *Catalog
	Profiles   map[int]Vector
	Stats      CleanStats

	// rated holds every movie id a user ever rated, taken from the raw
	// events before cleaning, so that dropped events still exclude.
	rated map[int]map[int]struct{}
}

// Rated reports whether the user's raw rating events mention the movie.
func (m *Model) Rated(userID, movieID int) bool {
	set, ok := m.rated[userID]
	if !ok {
		return false
	}
	_, ok = set[movieID]
	return ok
}

// BuildOptions tunes a model build.
type BuildOptions struct {
	// Workers for the profile build; 0 means runtime.NumCPU().
	Workers int
}

// Build runs the whole pipeline: catalog + vocabulary from the movie rows,
// cleaned per-user events from the rating rows, then one profile per user.
// It fails if either input relation is empty after cleaning.
func Build(movies []types.MovieRow, ratings []types.Rating, opts BuildOptions, logger zerolog.Logger) (*Model, error) {
	voc, cat, stats := BuildCatalog(movies, logger)
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	rated := make(map[int]map[int]struct{})
	for _, r := range ratings {
		set, ok := rated[r.UserID]
		if !ok {
			set = make(map[int]struct{})
			rated[r.UserID] = set
		}
		set[r.MovieID] = struct{}{}
	}

	events, rstats := CleanRatings(ratings, cat, logger)
	stats.merge(rstats)
	if len(events) == 0 {
		return nil, ErrNoRatings
	}

	profiles, zeroMass := BuildProfiles(events, cat, voc.Len(), opts.Workers, logger)
	stats.ZeroMassUsers = zeroMass
	if len(profiles) == 0 {
		return nil, ErrNoRatings
	}

	m := &Model{
		BuildID:    uuid.NewString(),
		Vocabulary: voc,
		Catalog:    cat,
		Profiles:   profiles,
		Stats:      stats,
		rated:      rated,
	}

	logger.Info().
		Str("buildId", m.BuildID).
		Int("movies", cat.Len()).
		Int("genres", voc.Len()).
		Int("users", len(profiles)).
		Int("dangling_ratings", stats.DanglingRatings).
		Int("zero_mass_users", stats.ZeroMassUsers).
		Msg("model built")

	return m, nil
}
