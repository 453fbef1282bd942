package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"cinematch/internal/engine"
	"cinematch/pkg/types"
)

// ErrMissingMongoURI indicates that no MongoDB URI was configured.
var ErrMissingMongoURI = errors.New("data: missing MongoDB URI")

// movieDocument mirrors the movie collection schema.
type movieDocument struct {
	MovieID int      `bson:"movieId"`
	Title   string   `bson:"title"`
	Genres  []string `bson:"genres"`
}

// userRatingsDocument mirrors the per-user ratings schema: one document
// per user with a movieId -> rating map.
type userRatingsDocument struct {
	UserID  int             `bson:"userId"`
	Ratings map[int]float64 `bson:"ratings"`
}

// MongoSource reads the input relations from MongoDB collections. It is an
// alternative loader to the CSV files, not a persistence layer for the
// model; models are always rebuilt in memory from what it returns.
type MongoSource struct {
	client *mongo.Client
	db     string
}

// NewMongoSource connects and pings. The caller owns the source and must
// Close it when done.
func NewMongoSource(ctx context.Context, uri, db string) (*MongoSource, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, ErrMissingMongoURI
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opt := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opt)
	if err != nil {
		return nil, fmt.Errorf("data: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("data: ping: %w", err)
	}
	return &MongoSource{client: client, db: db}, nil
}

// Close disconnects the underlying client.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Movies loads every movie document from the collection, re-joining the
// genre list into the raw delimited field the engine expects.
func (s *MongoSource) Movies(ctx context.Context, coll string) ([]types.MovieRow, error) {
	cursor, err := s.client.Database(s.db).Collection(coll).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("data: finding movies: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("data: decoding movies: %w", err)
	}

	movies := make([]types.MovieRow, 0, len(docs))
	for _, d := range docs {
		movies = append(movies, types.MovieRow{
			MovieID: d.MovieID,
			Title:   d.Title,
			Genres:  strings.Join(d.Genres, engine.GenreSeparator),
		})
	}
	return movies, nil
}

// Ratings loads every user document and flattens the per-user rating maps
// into individual rating events.
func (s *MongoSource) Ratings(ctx context.Context, coll string) ([]types.Rating, error) {
	cursor, err := s.client.Database(s.db).Collection(coll).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("data: finding ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []types.Rating
	for cursor.Next(ctx) {
		var doc userRatingsDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("data: decoding ratings: %w", err)
		}
		for movieID, rating := range doc.Ratings {
			ratings = append(ratings, types.Rating{UserID: doc.UserID, MovieID: movieID, Rating: rating})
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("data: iterating ratings: %w", err)
	}
	return ratings, nil
}
