// Package config loads runtime configuration: defaults first, then an
// optional YAML file, then CINEMATCH_* environment overrides.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where a config file is searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// EnvPrefix namespaces the environment overrides. Nesting uses a double
// underscore so single underscores survive in key names, e.g.
// CINEMATCH_MONGO__URI maps to mongo.uri and CINEMATCH_DATA_DIR to
// data_dir.
const EnvPrefix = "CINEMATCH_"

type MongoConfig struct {
	URI               string `koanf:"uri"`
	Database          string `koanf:"database"`
	MoviesCollection  string `koanf:"movies_collection"`
	RatingsCollection string `koanf:"ratings_collection"`
}

type Config struct {
	// Source selects where the input relations come from: "csv" or "mongo".
	Source string `koanf:"source"`

	// DataDir holds movies.csv and ratings.csv when Source is "csv".
	DataDir string `koanf:"data_dir"`

	Mongo MongoConfig `koanf:"mongo"`

	// Workers for the profile build; 0 means NumCPU.
	Workers int `koanf:"workers"`

	// TopN is the default recommendation list length.
	TopN int `koanf:"top_n"`

	LogLevel string `koanf:"log_level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Source:  "csv",
		DataDir: "dataset/ml-latest-small",
		Mongo: MongoConfig{
			Database:          "cinematch",
			MoviesCollection:  "movies",
			RatingsCollection: "user_ratings",
		},
		Workers:  runtime.NumCPU(),
		TopN:     10,
		LogLevel: "info",
	}
}

// Load builds the effective configuration. path may be empty, in which
// case the default locations are probed; a missing file is not an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path == "" {
		for _, p := range DefaultConfigPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: loading env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Source != "csv" && cfg.Source != "mongo" {
		return Config{}, fmt.Errorf("config: unknown source %q", cfg.Source)
	}
	return cfg, nil
}
