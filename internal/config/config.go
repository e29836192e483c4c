package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the auction engine
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	SweepInterval   time.Duration `mapstructure:"SWEEP_INTERVAL"`
	AntiSnipeWindow time.Duration `mapstructure:"ANTI_SNIPE_WINDOW"`
	BidHoldTTL      time.Duration `mapstructure:"BID_HOLD_TTL"`
	SeedPlacements  bool          `mapstructure:"SEED_PLACEMENTS"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads app.env from path, falling back to environment
// variables and defaults when the file is absent
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("SWEEP_INTERVAL", 10*time.Second)
	v.SetDefault("ANTI_SNIPE_WINDOW", 30*time.Second)
	v.SetDefault("BID_HOLD_TTL", 15*time.Minute)
	v.SetDefault("SEED_PLACEMENTS", true)
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
