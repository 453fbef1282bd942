package engine

import (
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"cinematch/pkg/types"
)

// UserEvents holds one user's cleaned rating events: movie id -> rating.
type UserEvents map[int]float64

// CleanRatings groups raw rating events per user, dropping events that
// reference movies absent from the catalog. A later event for the same
// (user, movie) pair replaces an earlier one. The returned stats fields
// cover only the rating side; BuildCatalog fills the movie side.
func CleanRatings(ratings []types.Rating, cat *Catalog, logger zerolog.Logger) (map[int]UserEvents, CleanStats) {
	log := logger.With().Str("component", "ratings").Logger()

	var stats CleanStats
	stats.RatingsTotal = len(ratings)

	events := make(map[int]UserEvents)
	for _, r := range ratings {
		if _, ok := cat.Get(r.MovieID); !ok {
			stats.DanglingRatings++
			log.Debug().Int("userId", r.UserID).Int("movieId", r.MovieID).
				Msg("rating references a movie absent from the catalog, dropped")
			continue
		}
		ue, ok := events[r.UserID]
		if !ok {
			ue = make(UserEvents)
			events[r.UserID] = ue
		}
		if _, dup := ue[r.MovieID]; dup {
			stats.DuplicateRatings++
		}
		ue[r.MovieID] = r.Rating
	}
	return events, stats
}

// buildProfile folds one user's events into their rating-weighted mean
// genre vector. ok is false when the rating mass is zero, in which case
// the user has no defined profile.
func buildProfile(ue UserEvents, cat *Catalog, dim int) (Vector, bool) {
	sum := make(Vector, dim)
	var mass float64
	for movieID, rating := range ue {
		entry, ok := cat.Get(movieID)
		if !ok {
			continue
		}
		for i, x := range entry.Vector {
			sum[i] += rating * x
		}
		mass += rating
	}
	if mass == 0 {
		return nil, false
	}
	for i := range sum {
		sum[i] /= mass
	}
	return sum, true
}

// BuildProfiles computes one profile per user with positive rating mass.
// With workers > 1 the users are chunked into blocks and processed on a
// worker pool; each worker folds into a local map and the partials are
// merged single-threaded, so the result is identical to the sequential
// fold. Zero-mass users are excluded and counted.
func BuildProfiles(events map[int]UserEvents, cat *Catalog, dim, workers int, logger zerolog.Logger) (map[int]Vector, int) {
	log := logger.With().Str("component", "profiles").Logger()

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	users := make([]int, 0, len(events))
	for u := range events {
		users = append(users, u)
	}
	sort.Ints(users)

	if workers == 1 || len(users) < 2*userBatchSize {
		profiles := make(map[int]Vector, len(users))
		zeroMass := 0
		for _, u := range users {
			if p, ok := buildProfile(events[u], cat, dim); ok {
				profiles[u] = p
			} else {
				zeroMass++
				log.Warn().Int("userId", u).Msg("user has zero rating mass, excluded from profiles")
			}
		}
		return profiles, zeroMass
	}

	type partial struct {
		profiles map[int]Vector
		zeroMass []int
	}

	blocks := chunkInts(users, userBatchSize)
	workCh := make(chan []int)
	partCh := make(chan partial, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			local := partial{profiles: make(map[int]Vector)}
			for blk := range workCh {
				for _, u := range blk {
					if p, ok := buildProfile(events[u], cat, dim); ok {
						local.profiles[u] = p
					} else {
						local.zeroMass = append(local.zeroMass, u)
					}
				}
			}
			partCh <- local
		}()
	}

	go func() {
		for _, blk := range blocks {
			workCh <- blk
		}
		close(workCh)
		wg.Wait()
		close(partCh)
	}()

	profiles := make(map[int]Vector, len(users))
	zeroMass := 0
	for p := range partCh {
		for u, vec := range p.profiles {
			profiles[u] = vec
		}
		for _, u := range p.zeroMass {
			zeroMass++
			log.Warn().Int("userId", u).Msg("user has zero rating mass, excluded from profiles")
		}
	}
	return profiles, zeroMass
}

// userBatchSize is the block size handed to each profile worker.
const userBatchSize = 200

func chunkInts(all []int, size int) [][]int {
	var out [][]int
	for i := 0; i < len(all); i += size {
		j := i + size
		if j > len(all) {
			j = len(all)
		}
		out = append(out, all[i:j])
	}
	return out
}
