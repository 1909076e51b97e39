package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	// service
	Host                  string   `toml:"host"`
	Port                  int      `toml:"port"`
	PrometheusMetricsHost string   `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string   `toml:"prometheus_metrics_port"`
	AllowedOrigins        []string `toml:"allowed_origins"`

	// data
	DataPath            string `toml:"data_path"`
	MonthOnlyOrdering   bool   `toml:"month_only_ordering"`
	QueryCacheSizeMB    int    `toml:"query_cache_size_mb"`
	QueryCacheExpireSec int    `toml:"query_cache_expire_sec"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// tracing
	HoneycombEnabled bool `toml:"honeycomb_enabled"`

	Questions Questions `toml:"questions"`
}

// Questions configures who and what the canned questions are about.
type Questions struct {
	BenchPress       string `toml:"bench_press"`
	BackSquat        string `toml:"back_squat"`
	SquatterFirst    string `toml:"squatter_first_name"`
	SquatterLast     string `toml:"squatter_last_name"`
	PresserFirst     string `toml:"presser_first_name"`
	PresserLast      string `toml:"presser_last_name"`
	SquatYear        int    `toml:"squat_year"`
	BestSquatterYear int    `toml:"best_month_year"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Default is used when no config file is present.
func Default() *Config {
	cfg := &Config{
		Environment:           "development",
		Host:                  "localhost",
		Port:                  9000,
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "2112",
		AllowedOrigins:        []string{"http://localhost:8080"},
		DataPath:              "./data",
		QueryCacheSizeMB:      10,
		QueryCacheExpireSec:   60 * 60 * 24,
		LogLevel:              "info",
		LogsPath:              "./logs/liftstats",
		LogToStdout:           true,
	}
	cfg.Questions.fillDefaults()
	return cfg
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.DataPath == "" {
		return nil, fmt.Errorf("config [%s]: data_path not set", cfg.Environment)
	}
	cfg.Questions.fillDefaults()

	return cfg, nil
}

func (q *Questions) fillDefaults() {
	if q.BenchPress == "" {
		q.BenchPress = "Bench Press"
	}
	if q.BackSquat == "" {
		q.BackSquat = "Back Squat"
	}
	if q.SquatterFirst == "" && q.SquatterLast == "" {
		q.SquatterFirst, q.SquatterLast = "Barry", "Moore"
	}
	if q.PresserFirst == "" && q.PresserLast == "" {
		q.PresserFirst, q.PresserLast = "Abby", "Smith"
	}
	if q.SquatYear == 0 {
		q.SquatYear = 2016
	}
	if q.BestSquatterYear == 0 {
		q.BestSquatterYear = 2017
	}
}
