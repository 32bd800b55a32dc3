// Package config loads runtime settings from the environment, an optional
// .env file and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config holds every setting the API and its tooling read at startup.
type Config struct {
	Port int

	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	UseConnectionStr bool
	ConnectionStr    string

	SecretKey string
	JwtIssuer string
	JwtTTL    time.Duration

	AllowOrigins       []string
	RateLimitPerSecond uint
	RedisURL           string

	AdminEmail      string
	AdminPassword   string
	SeedSampleUsers bool

	Logging bool
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("USE_CONNECTION_STR", false)
	v.SetDefault("JWT_ISSUER", "DevJobsAPI")
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("ALLOW_ORIGIN", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_REQUESTS_PER_SECOND", 5)
	v.SetDefault("SEED_SAMPLE_USERS", false)
	v.SetDefault("LOGGING", false)
}

// Load reads configuration. Environment variables always win over values from
// configFile, which may be empty.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	rate := v.GetInt("RATE_LIMIT_REQUESTS_PER_SECOND")
	if rate <= 0 {
		rate = 5
	}

	cfg := &Config{
		Port:               v.GetInt("PORT"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USERNAME"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_DATABASE"),
		UseConnectionStr:   v.GetBool("USE_CONNECTION_STR"),
		ConnectionStr:      v.GetString("DB_CONNECTION_STR"),
		SecretKey:          v.GetString("SECRET_KEY"),
		JwtIssuer:          v.GetString("JWT_ISSUER"),
		JwtTTL:             v.GetDuration("JWT_TTL"),
		AllowOrigins:       splitList(v.GetString("ALLOW_ORIGIN")),
		RateLimitPerSecond: uint(rate),
		RedisURL:           v.GetString("REDIS_URL"),
		AdminEmail:         v.GetString("ADMIN_EMAIL"),
		AdminPassword:      v.GetString("ADMIN_PASSWORD"),
		SeedSampleUsers:    v.GetBool("SEED_SAMPLE_USERS"),
		Logging:            v.GetBool("LOGGING"),
	}

	if cfg.JwtTTL <= 0 {
		cfg.JwtTTL = time.Hour
	}

	return cfg, nil
}

// RequireSecret fails when no JWT signing secret is configured.
func (c *Config) RequireSecret() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
