package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"foodshare/internal/adapters/out/postgres"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/jobs"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is assembled from defaults, then environment variables (a .env file is
// loaded first when present), then the TOML file named by CONFIG_FILE.
type Config struct {
	HTTP       HTTPConfig       `toml:"http"`
	Database   DatabaseConfig   `toml:"database"`
	Auth       AuthConfig       `toml:"auth"`
	Rewards    RewardsConfig    `toml:"rewards"`
	Settlement SettlementConfig `toml:"settlement"`
	Telemetry  TelemetryConfig  `toml:"telemetry"`
	LogLevel   string           `toml:"log_level"`
}

type HTTPConfig struct {
	Port      string  `toml:"port"`
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	Host         string `toml:"host"`
	Port         string `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Name         string `toml:"name"`
	SSLMode      string `toml:"sslmode"`
	SQLitePath   string `toml:"sqlite_path"`
	MaxOpenConns int    `toml:"max_open_conns"`
}

type AuthConfig struct {
	JWTSigningKey string `toml:"jwt_signing_key"`
}

type RewardsConfig struct {
	DonorPoints         int `toml:"donor_points"`
	ClaimantPoints      int `toml:"claimant_points"`
	ReviewPointsPerStar int `toml:"review_points_per_star"`
}

type SettlementConfig struct {
	Schedule  string `toml:"schedule"`
	BatchSize int    `toml:"batch_size"`
}

type TelemetryConfig struct {
	ServiceName  string `toml:"service_name"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: "8080", RateLimit: 20, RateBurst: 40},
		Database: DatabaseConfig{
			Driver:       postgres.DriverPostgres,
			Host:         "localhost",
			Port:         "5432",
			User:         "postgres",
			Name:         "foodshare",
			SSLMode:      "disable",
			SQLitePath:   "foodshare.db",
			MaxOpenConns: 10,
		},
		Rewards: RewardsConfig{
			DonorPoints:         services.DefaultDonorPoints,
			ClaimantPoints:      services.DefaultClaimantPoints,
			ReviewPointsPerStar: services.DefaultReviewPointsPerStar,
		},
		Settlement: SettlementConfig{Schedule: jobs.DefaultSettlementSchedule, BatchSize: 100},
		Telemetry:  TelemetryConfig{ServiceName: "foodshare"},
		LogLevel:   "info",
	}
}

// LoadConfig reads envFile if it exists, applies the environment and the optional
// TOML overlay, and validates the result.
func LoadConfig(envFile string, logger *slog.Logger) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path, logger); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}
	float := func(key string, dst *float64) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = f
		return nil
	}

	str("HTTP_PORT", &c.HTTP.Port)
	str("DB_DRIVER", &c.Database.Driver)
	str("DB_HOST", &c.Database.Host)
	str("DB_PORT", &c.Database.Port)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_NAME", &c.Database.Name)
	str("DB_SSLMODE", &c.Database.SSLMode)
	str("DB_SQLITE_PATH", &c.Database.SQLitePath)
	str("JWT_SIGNING_KEY", &c.Auth.JWTSigningKey)
	str("SETTLEMENT_SCHEDULE", &c.Settlement.Schedule)
	str("OTEL_SERVICE_NAME", &c.Telemetry.ServiceName)
	str("OTEL_EXPORTER_OTLP_ENDPOINT", &c.Telemetry.OTLPEndpoint)
	str("LOG_LEVEL", &c.LogLevel)

	return errors.Join(
		float("RATE_LIMIT", &c.HTTP.RateLimit),
		integer("RATE_BURST", &c.HTTP.RateBurst),
		integer("DB_MAX_OPEN_CONNS", &c.Database.MaxOpenConns),
		integer("REWARD_DONOR_POINTS", &c.Rewards.DonorPoints),
		integer("REWARD_CLAIMANT_POINTS", &c.Rewards.ClaimantPoints),
		integer("REWARD_REVIEW_POINTS_PER_STAR", &c.Rewards.ReviewPointsPerStar),
		integer("SETTLEMENT_BATCH_SIZE", &c.Settlement.BatchSize),
	)
}

// applyFile overlays the keys present in the TOML file. Unknown keys are logged, not rejected.
func (c *Config) applyFile(path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		logger.Warn("config file contains undecoded keys", "path", path, "keys", keys)
	}
	return nil
}

func (c Config) Validate() error {
	var problems []error
	if strings.TrimSpace(c.HTTP.Port) == "" {
		problems = append(problems, errors.New("http port is required"))
	}
	if c.Database.Driver != postgres.DriverPostgres && c.Database.Driver != postgres.DriverSQLite {
		problems = append(problems, fmt.Errorf("database driver %q must be %s or %s",
			c.Database.Driver, postgres.DriverPostgres, postgres.DriverSQLite))
	}
	if c.Auth.JWTSigningKey == "" {
		problems = append(problems, errors.New("JWT_SIGNING_KEY is required"))
	}
	if err := c.RewardPolicy().Validate(); err != nil {
		problems = append(problems, err)
	}
	if c.Settlement.BatchSize < 0 {
		problems = append(problems, errors.New("settlement batch size must not be negative"))
	}
	return errors.Join(problems...)
}

// DSN builds the driver-specific connection string.
func (c DatabaseConfig) DSN() string {
	if c.Driver == postgres.DriverSQLite {
		return fmt.Sprintf("file:%s?cache=shared", c.SQLitePath)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c Config) PostgresConfig() postgres.DatabaseConfig {
	return postgres.DatabaseConfig{
		Driver:       c.Database.Driver,
		DSN:          c.Database.DSN(),
		MaxOpenConns: c.Database.MaxOpenConns,
		MaxIdleConns: c.Database.MaxOpenConns,
	}
}

func (c Config) RewardPolicy() services.RewardPolicy {
	return services.RewardPolicy{
		DonorPoints:         c.Rewards.DonorPoints,
		ClaimantPoints:      c.Rewards.ClaimantPoints,
		ReviewPointsPerStar: c.Rewards.ReviewPointsPerStar,
	}
}

func (c Config) SettlementJob() jobs.SettlementJobConfig {
	return jobs.SettlementJobConfig{
		Schedule:  c.Settlement.Schedule,
		BatchSize: c.Settlement.BatchSize,
	}
}

// SlogLevel maps LogLevel onto slog, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
