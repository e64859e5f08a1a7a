package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	UpstreamURL  string        `env:"UPSTREAM_URL" envDefault:"https://api.pota.app/spot/activator"`
	UserAgent    string        `env:"USER_AGENT"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`

	S3Bucket    string `env:"S3_BUCKET,required"`
	S3Region    string `env:"S3_REGION" envDefault:"auto"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Prefix    string `env:"S3_PREFIX"`

	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	JobTimeout      time.Duration `env:"JOB_TIMEOUT" envDefault:"5m"`
	ReadConcurrency int           `env:"READ_CONCURRENCY" envDefault:"16"`

	ManifestHourlyMax  int `env:"MANIFEST_HOURLY_MAX" envDefault:"720"`
	ManifestDailyMax   int `env:"MANIFEST_DAILY_MAX" envDefault:"90"`
	ManifestMonthlyMax int `env:"MANIFEST_MONTHLY_MAX" envDefault:"24"`

	ScheduleCollect   string `env:"SCHEDULE_COLLECT" envDefault:"* * * * *"`
	ScheduleHourly    string `env:"SCHEDULE_HOURLY" envDefault:"5 * * * *"`
	ScheduleDaily     string `env:"SCHEDULE_DAILY" envDefault:"15 0 * * *"`
	ScheduleMonthly   string `env:"SCHEDULE_MONTHLY" envDefault:"30 0 1 * *"`
	ScheduleSummarize string `env:"SCHEDULE_SUMMARIZE" envDefault:"*/15 * * * *"`
}

// Overrides holds CLI flag values that take priority over env vars.
type Overrides struct {
	EnvFile  string
	HTTPAddr string
	LogLevel string
}

// Load reads configuration from .env file, environment variables, and CLI overrides.
// Priority: CLI flags > environment variables > .env file > struct defaults.
func Load(overrides Overrides) (*Config, error) {
	// Load .env file (silent if missing)
	envFile := overrides.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}

	// Parse environment variables into config struct
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Apply CLI overrides (non-empty values win)
	if overrides.HTTPAddr != "" {
		cfg.HTTPAddr = overrides.HTTPAddr
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}

	return cfg, nil
}
