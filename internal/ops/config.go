package ops

import (
	"encoding/json"
	"fmt"
	"os"

	"main/internal/bench"
	"main/internal/book"
	"main/internal/feed"
)

// FileConfig mirrors the JSON config layout. Zero fields fall back to
// the reference protocol defaults.
type FileConfig struct {
	Orders         int    `json:"orders"`
	Seed           int64  `json:"seed"`
	WarmupRuns     int    `json:"warmupRuns"`
	MeasuredRuns   int    `json:"measuredRuns"`
	BestPriceCalls int    `json:"bestPriceCalls"`
	PriceMin       int64  `json:"priceMin"`
	PriceMax       int64  `json:"priceMax"`
	VolumeMin      int64  `json:"volumeMin"`
	VolumeMax      int64  `json:"volumeMax"`
	CSVPath        string `json:"csvPath"`
	JSONPath       string `json:"jsonPath"`

	Pyroscope PyroscopeConfig `json:"pyroscope"`
	Postgres  PostgresConfig  `json:"postgres"`
}

// PyroscopeConfig enables continuous profiling when a server address
// is set.
type PyroscopeConfig struct {
	ServerAddress   string `json:"serverAddress"`
	ApplicationName string `json:"applicationName"`
}

// PostgresConfig enables the results store when a host is set.
type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"sslMode"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Feed      feed.Config
	Bench     bench.Config
	CSVPath   string
	JSONPath  string
	Pyroscope PyroscopeConfig
	Postgres  PostgresConfig
}

// Load reads a JSON config file and resolves defaults. An empty path
// yields the reference protocol: 10000 orders, 3 warmup and 10
// measured cycles, 1000 best-price calls per sample.
func Load(path string) (Loaded, error) {
	var cfg FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Loaded{}, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Loaded{}, err
		}
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if cfg.Orders < 0 {
		return Loaded{}, fmt.Errorf("orders must be > 0, got %d", cfg.Orders)
	}
	if cfg.Orders == 0 {
		cfg.Orders = 10000
	}

	feedCfg := feed.DefaultConfig(cfg.Orders, cfg.Seed)
	if cfg.PriceMin != 0 || cfg.PriceMax != 0 {
		feedCfg.PriceMin = book.Price(cfg.PriceMin)
		feedCfg.PriceMax = book.Price(cfg.PriceMax)
	}
	if cfg.VolumeMin != 0 || cfg.VolumeMax != 0 {
		feedCfg.VolumeMin = book.Volume(cfg.VolumeMin)
		feedCfg.VolumeMax = book.Volume(cfg.VolumeMax)
	}

	benchCfg := bench.DefaultConfig()
	if cfg.WarmupRuns != 0 {
		benchCfg.WarmupRuns = cfg.WarmupRuns
	}
	if cfg.MeasuredRuns != 0 {
		benchCfg.MeasuredRuns = cfg.MeasuredRuns
	}
	if cfg.BestPriceCalls != 0 {
		benchCfg.BestPriceCalls = cfg.BestPriceCalls
	}

	csvPath := cfg.CSVPath
	if csvPath == "" {
		csvPath = "orderbook_benchmark.csv"
	}

	if cfg.Pyroscope.ServerAddress != "" && cfg.Pyroscope.ApplicationName == "" {
		cfg.Pyroscope.ApplicationName = "lobbench"
	}

	return Loaded{
		Feed:      feedCfg,
		Bench:     benchCfg,
		CSVPath:   csvPath,
		JSONPath:  cfg.JSONPath,
		Pyroscope: cfg.Pyroscope,
		Postgres:  cfg.Postgres,
	}, nil
}
