// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Palettes PaletteConfig  `mapstructure:"palettes"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ServerConfig holds settings for the metrics/health listener.
type ServerConfig struct {
	MetricsPort  int `mapstructure:"metrics_port"`
	PollInterval int `mapstructure:"poll_interval"` // milliseconds
	ScanBatch    int `mapstructure:"scan_batch"`
}

// --- Engine Configuration ---

// EngineConfig holds the tunable rule tables for the decision engine.
// Zero values fall back to the engine's built-in defaults.
type EngineConfig struct {
	WidthToCircumference float64 `mapstructure:"width_to_circumference"`
	DefaultSize          string  `mapstructure:"default_size"`
	SlimMinRatio         float64 `mapstructure:"slim_min_ratio"`
	RegularMinRatio      float64 `mapstructure:"regular_min_ratio"`

	SizeScale   []string `mapstructure:"size_scale"`
	GenderOrder []string `mapstructure:"gender_order"`

	// body_shape -> garment_type -> step on the size scale
	ShapeAdjustments map[string]map[string]int `mapstructure:"shape_adjustments"`

	FitBonus   int `mapstructure:"fit_bonus"`
	SizeBonus  int `mapstructure:"size_bonus"`
	ColorBonus int `mapstructure:"color_bonus"`
	BaseBonus  int `mapstructure:"base_bonus"`

	SegmentLimit   int `mapstructure:"segment_limit"`
	TopN           int `mapstructure:"top_n"`
	MatchLimit     int `mapstructure:"match_limit"`
	ColorsToRecord int `mapstructure:"colors_to_record"`

	CacheTTL int `mapstructure:"cache_ttl"` // milliseconds, catalog snapshot cache
}

// PaletteConfig maps skin tone and undertone onto ranked color names.
// skin_tone -> undertone -> ordered color names (most recommended first).
type PaletteConfig struct {
	Tones map[string]map[string][]string `mapstructure:"tones"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
