package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds MongoDB connection settings
type DatabaseConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Name           string        `mapstructure:"name"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	AuthSource     string        `mapstructure:"auth_source"`
	ReplicaSet     string        `mapstructure:"replica_set"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// JWTConfig holds access token settings for the login payload
type JWTConfig struct {
	Secret              string        `mapstructure:"secret"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration"`
	Issuer              string        `mapstructure:"issuer"`
}

// MetricsConfig holds metrics endpoint settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables and
// validates everything the HTTP server needs. Extra paths are searched
// before the defaults, which lets commands accept an explicit --config
// directory.
func Load(extraPaths ...string) (*Config, error) {
	cfg, err := load(extraPaths)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadSeed reads configuration like Load but validates only the database
// section. The seed command never issues tokens, so it must not be gated
// on JWT settings.
func LoadSeed(extraPaths ...string) (*Config, error) {
	cfg, err := load(extraPaths)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateSeed(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func load(extraPaths []string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range extraPaths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/blog-backend/")

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough to run
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "blog-backend")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", true)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 27017)
	v.SetDefault("database.name", "blog-app")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.connect_timeout", 10*time.Second)

	// JWT defaults
	v.SetDefault("jwt.access_token_duration", time.Hour)
	v.SetDefault("jwt.issuer", "blog-backend")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Validate checks the configuration the HTTP server requires
func (c *Config) Validate() error {
	if err := c.ValidateSeed(); err != nil {
		return err
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	return nil
}

// ValidateSeed checks only the store configuration
func (c *Config) ValidateSeed() error {
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}

// MongoURI returns the MongoDB connection URI.
func (c *DatabaseConfig) MongoURI() string {
	if c.User != "" && c.Password != "" {
		uri := fmt.Sprintf("mongodb://%s:%s@%s:%d/%s",
			c.User, c.Password, c.Host, c.Port, c.Name)
		return c.appendMongoOptions(uri)
	}
	uri := fmt.Sprintf("mongodb://%s:%d/%s", c.Host, c.Port, c.Name)
	return c.appendMongoOptions(uri)
}

// appendMongoOptions adds optional query parameters to the MongoDB URI.
func (c *DatabaseConfig) appendMongoOptions(uri string) string {
	params := []string{}
	if c.AuthSource != "" {
		params = append(params, "authSource="+c.AuthSource)
	}
	if c.ReplicaSet != "" {
		params = append(params, "replicaSet="+c.ReplicaSet)
	}
	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}
	return uri
}
