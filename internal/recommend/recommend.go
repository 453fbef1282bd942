// Package recommend answers the two model queries: top-N recommendations
// for a user and a predicted rating for a (user, movie) pair. Both are
// pure reads over an immutable engine.Model.
package recommend

import (
	"errors"
	"fmt"
	"sort"

	"cinematch/internal/engine"
	"cinematch/pkg/types"
)

var (
	// ErrUnknownUser means the model holds no profile for the user. This
	// is distinct from an empty recommendation list, which means the user
	// is known but no unrated candidates remain.
	ErrUnknownUser = errors.New("recommend: unknown user")

	// ErrUnknownMovie means the movie is absent from the catalog.
	ErrUnknownMovie = errors.New("recommend: unknown movie")
)

// TopN scores the user's profile against every catalog movie the user has
// not already rated and returns the best topN, ordered by score descending
// with ties broken by ascending movie id. Fewer than topN candidates is
// not an error.
func TopN(m *engine.Model, userID, topN int) ([]types.Rec, error) {
	profile, ok := m.Profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	if topN <= 0 {
		return []types.Rec{}, nil
	}

	ids := m.Catalog.IDs()
	candidates := make([]int, 0, len(ids))
	vectors := make([]engine.Vector, 0, len(ids))
	for _, id := range ids {
		if m.Rated(userID, id) {
			continue
		}
		entry, _ := m.Catalog.Get(id)
		candidates = append(candidates, id)
		vectors = append(vectors, entry.Vector)
	}

	scores := engine.Cosines(profile, vectors)

	recs := make([]types.Rec, len(candidates))
	for i, id := range candidates {
		entry, _ := m.Catalog.Get(id)
		recs[i] = types.Rec{MovieID: id, Title: entry.Title, Score: scores[i]}
	}

	// candidates are already id-ascending, so equal scores keep that order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs, nil
}

// PredictRating estimates the rating the user would give the movie:
// cosine(profile, movie vector) scaled by the profile's component sum,
// which approximates the user's rating intensity. The result is
// deliberately unclipped; it can exceed the rating scale or go negative
// when the similarity does.
func PredictRating(m *engine.Model, userID, movieID int) (float64, error) {
	profile, ok := m.Profiles[userID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	entry, ok := m.Catalog.Get(movieID)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMovie, movieID)
	}
	return engine.Cosine(profile, entry.Vector) * profile.Sum(), nil
}
