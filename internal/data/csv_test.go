package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinematch/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMovies(t *testing.T) {
	path := writeFile(t, t.TempDir(), MoviesFile,
		"movieId,title,genres\n"+
			"1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy\n"+
			"2,\"American President, The (1995)\",Comedy|Drama|Romance\n"+
			"3,Mystery (1999),(no genres listed)\n")

	movies, err := LoadMovies(path)
	require.NoError(t, err)
	require.Len(t, movies, 3)

	assert.Equal(t, types.MovieRow{
		MovieID: 2,
		Title:   "American President, The (1995)",
		Genres:  "Comedy|Drama|Romance",
	}, movies[1])

	// the sentinel row is kept here; dropping it is the engine's call
	assert.Equal(t, "(no genres listed)", movies[2].Genres)
}

func TestLoadMoviesSkipsMalformedRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), MoviesFile,
		"movieId,title,genres\n"+
			"not-a-number,Broken,Action\n"+
			"5,Heat (1995),Action|Crime|Thriller\n")

	movies, err := LoadMovies(path)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 5, movies[0].MovieID)
}

func TestLoadRatings(t *testing.T) {
	path := writeFile(t, t.TempDir(), RatingsFile,
		"userId,movieId,rating,timestamp\n"+
			"1,31,2.5,1260759144\n"+
			"1,1029,3.0,1260759179\n"+
			"7,50,4.5,1260759182\n")

	ratings, err := LoadRatings(path)
	require.NoError(t, err)
	require.Len(t, ratings, 3)
	assert.Equal(t, types.Rating{UserID: 7, MovieID: 50, Rating: 4.5}, ratings[2])
}

func TestLoadRatingsSkipsMalformedRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), RatingsFile,
		"userId,movieId,rating\n"+
			"1,31,not-a-rating\n"+
			"x,31,2.5\n"+
			"2,50,4.0\n")

	ratings, err := LoadRatings(path)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 2, ratings[0].UserID)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MoviesFile, "movieId,title,genres\n1,Only (2000),Drama\n")
	writeFile(t, dir, RatingsFile, "userId,movieId,rating\n1,1,4.0\n")

	movies, ratings, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
	assert.Len(t, ratings, 1)
}

func TestLoadDirMissingFiles(t *testing.T) {
	_, _, err := LoadDir(t.TempDir())
	require.Error(t, err)
}
