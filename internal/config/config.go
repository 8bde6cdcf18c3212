// Package config loads simroute settings in three layers: built-in
// defaults, an optional YAML file and SIMROUTE_* environment variables.
// Later layers win. The merged result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SIMROUTE_"

// PathEnvVar names the variable that points at a YAML config file when
// no explicit path is passed to Load.
const PathEnvVar = EnvPrefix + "CONFIG"

// Matrix kinds accepted by MatrixConfig.Kind.
const (
	KindSimilarity = "similarity"
	KindAdjacency  = "adjacency"
	KindRatings    = "ratings"
)

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the merged simroute configuration.
type Config struct {
	Matrix MatrixConfig `koanf:"matrix"`
	Route  RouteConfig  `koanf:"route"`
	Log    LogConfig    `koanf:"log"`
}

// MatrixConfig describes the input matrix.
type MatrixConfig struct {
	// Path of a .npy file holding a float64 square matrix.
	Path string `koanf:"path"`
	// Kind selects the pipeline: "similarity" runs the full planner,
	// "ratings" derives cosine similarities from an item×user matrix first,
	// "adjacency" runs only the shortest path solver.
	Kind string `koanf:"kind" validate:"oneof=similarity ratings adjacency"`
}

// RouteConfig drives frontier expansion and path reporting.
type RouteConfig struct {
	Start    int     `koanf:"start" validate:"gte=0"`
	Target   int     `koanf:"target" validate:"gte=-1"` // -1 selects the last visited item
	BandLow  float64 `koanf:"band_low" validate:"gte=0"`
	BandHigh float64 `koanf:"band_high" validate:"gtfield=BandLow"`
}

// LogConfig mirrors logging.Config for the fields exposed to users.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Matrix: MatrixConfig{
			Kind: KindSimilarity,
		},
		Route: RouteConfig{
			Start:    0,
			Target:   -1,
			BandLow:  1,
			BandHigh: 2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var validate = validator.New()

// Validate checks struct constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Load merges defaults, the YAML file at path (or $SIMROUTE_CONFIG when
// path is empty; no file at all is fine) and SIMROUTE_* variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKeys maps SIMROUTE_* suffixes to koanf paths. Variables not listed
// here are ignored.
var envKeys = map[string]string{
	"matrix_path":     "matrix.path",
	"matrix_kind":     "matrix.kind",
	"route_start":     "route.start",
	"route_target":    "route.target",
	"route_band_low":  "route.band_low",
	"route_band_high": "route.band_high",
	"log_level":       "log.level",
	"log_format":      "log.format",
	"log_caller":      "log.caller",
}

// envTransformFunc turns SIMROUTE_ROUTE_BAND_LOW into route.band_low.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	return envKeys[key]
}
