package types

// MovieRow is a raw movie record as read from the dataset, before any
// cleaning. Genres holds the raw delimited field exactly as stored.
type MovieRow struct {
	MovieID int
	Title   string
	Genres  string
}

// Rating is a raw rating event.
type Rating struct {
	UserID  int
	MovieID int
	Rating  float64
}

// Rec is a single scored recommendation.
type Rec struct {
	MovieID int
	Title   string
	Score   float64
}

// BenchRow is one row of a worker-count sweep.
type BenchRow struct {
	Workers int
	Millis  int64
	Speedup float64
}
