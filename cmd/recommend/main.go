package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"cinematch/internal/config"
	"cinematch/internal/data"
	"cinematch/internal/engine"
	"cinematch/internal/recommend"
	"cinematch/pkg/styles"
	"cinematch/pkg/types"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		dataDir    = flag.String("data", "", "dataset directory (overrides config)")
		source     = flag.String("source", "", "input source: csv or mongo (overrides config)")
		userID     = flag.Int("user", 0, "user id to recommend for")
		topN       = flag.Int("top", 0, "number of recommendations (overrides config)")
		movieID    = flag.Int("movie", 0, "predict the rating for this movie instead of recommending")
		workers    = flag.Int("workers", 0, "profile build workers (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		styles.PrintFS("error", "config: %v", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	logger := newLogger(cfg.LogLevel)

	if *userID <= 0 {
		styles.PrintFS("error", "a positive -user id is required")
		os.Exit(1)
	}

	movies, ratings, err := loadDataset(cfg, logger)
	if err != nil {
		styles.PrintFS("error", "loading dataset: %v", err)
		os.Exit(1)
	}

	model, err := engine.Build(movies, ratings, engine.BuildOptions{Workers: cfg.Workers}, logger)
	if err != nil {
		styles.PrintFS("error", "building model: %v", err)
		os.Exit(1)
	}

	if *movieID > 0 {
		predicted, err := recommend.PredictRating(model, *userID, *movieID)
		if err != nil {
			styles.PrintFS("error", "%v", err)
			os.Exit(1)
		}
		title := ""
		if entry, ok := model.Catalog.Get(*movieID); ok {
			title = entry.Title
		}
		styles.PrintFS("success", "predicted rating for user %d on %q (id=%d): %.3f",
			*userID, title, *movieID, predicted)
		return
	}

	recs, err := recommend.TopN(model, *userID, cfg.TopN)
	if err != nil {
		styles.PrintFS("error", "%v", err)
		os.Exit(1)
	}
	if len(recs) == 0 {
		styles.PrintFS("info", "user %d has already rated every movie in the catalog", *userID)
		return
	}
	styles.PrintFS("info", "top %d recommendations for user %d:", len(recs), *userID)
	fmt.Print(styles.RecTable(recs))
}

func loadDataset(cfg config.Config, logger zerolog.Logger) ([]types.MovieRow, []types.Rating, error) {
	switch cfg.Source {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		src, err := data.NewMongoSource(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		defer src.Close(ctx)

		movies, err := src.Movies(ctx, cfg.Mongo.MoviesCollection)
		if err != nil {
			return nil, nil, err
		}
		ratings, err := src.Ratings(ctx, cfg.Mongo.RatingsCollection)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Int("movies", len(movies)).Int("ratings", len(ratings)).
			Str("source", "mongo").Msg("dataset loaded")
		return movies, ratings, nil
	default:
		movies, ratings, err := data.LoadDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Int("movies", len(movies)).Int("ratings", len(ratings)).
			Str("source", cfg.DataDir).Msg("dataset loaded")
		return movies, ratings, nil
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
