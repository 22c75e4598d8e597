package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"deviceInventoryManagement/internal/db"
)

// Config holds all application configuration.
type Config struct {
	DatabasePath string        `mapstructure:"database"`
	SessionFile  string        `mapstructure:"session_file"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	Debug        bool          `mapstructure:"debug"`
}

// Load reads configuration from an optional file and the environment.
// Environment variables use the DEVINV prefix, e.g. DEVINV_DATABASE.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("devinv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetDefault("database", db.DefaultPath)
	v.SetDefault("session_file", "lib/session/devinv.session")
	v.SetDefault("session_ttl", "12h")
	v.SetDefault("jwt_secret", "dev-secret-change-me")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("DEVINV")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s, Session: %s, TTL: %s, Secret: *** (masked) ***}",
		c.DatabasePath, c.SessionFile, c.SessionTTL)
}
