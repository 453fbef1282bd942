// Package data loads the two input relations (movie rows and rating
// events) from their external sources. It owns no cleaning beyond basic
// row shape; semantic cleaning lives in the engine.
package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"cinematch/pkg/types"
)

const (
	MoviesFile  = "movies.csv"
	RatingsFile = "ratings.csv"
)

// LoadMovies reads a MovieLens-style movies.csv: movieId,title,genres.
// Rows that are too short or carry a non-numeric id are skipped.
func LoadMovies(path string) ([]types.MovieRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening movies: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("reading movies header: %w", err)
	}

	var movies []types.MovieRow
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading movies: %w", err)
		}
		if len(rec) < 3 {
			continue
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		movies = append(movies, types.MovieRow{MovieID: id, Title: rec[1], Genres: rec[2]})
	}
	return movies, nil
}

// LoadRatings reads a MovieLens-style ratings.csv: userId,movieId,rating[,timestamp].
func LoadRatings(path string) ([]types.Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ratings: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("reading ratings header: %w", err)
	}

	var ratings []types.Rating
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ratings: %w", err)
		}
		if len(rec) < 3 {
			continue
		}
		uid, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		mid, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		val, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		ratings = append(ratings, types.Rating{UserID: uid, MovieID: mid, Rating: val})
	}
	return ratings, nil
}

// LoadDir loads both relations from a MovieLens dataset directory.
func LoadDir(dir string) ([]types.MovieRow, []types.Rating, error) {
	movies, err := LoadMovies(filepath.Join(dir, MoviesFile))
	if err != nil {
		return nil, nil, err
	}
	ratings, err := LoadRatings(filepath.Join(dir, RatingsFile))
	if err != nil {
		return nil, nil, err
	}
	return movies, ratings, nil
}
