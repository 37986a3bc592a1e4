package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Weather provider (Open-Meteo compatible endpoint).
	WeatherAPIBase string  `mapstructure:"WEATHER_API_BASE"`
	WeatherLat     float64 `mapstructure:"WEATHER_LAT"`
	WeatherLon     float64 `mapstructure:"WEATHER_LON"`
	WeatherCity    string  `mapstructure:"WEATHER_CITY"`

	// Bookable number ranges.
	LockerRangeStart int `mapstructure:"LOCKER_RANGE_START"`
	LockerRangeEnd   int `mapstructure:"LOCKER_RANGE_END"`
	RackRangeStart   int `mapstructure:"RACK_RANGE_START"`
	RackRangeEnd     int `mapstructure:"RACK_RANGE_END"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("WEATHER_API_BASE", "https://api.open-meteo.com/v1/forecast")
	// Boston by default, same as the web app.
	viper.SetDefault("WEATHER_LAT", 42.3601)
	viper.SetDefault("WEATHER_LON", -71.0589)
	viper.SetDefault("WEATHER_CITY", "Boston")
	viper.SetDefault("LOCKER_RANGE_START", 100)
	viper.SetDefault("LOCKER_RANGE_END", 120)
	viper.SetDefault("RACK_RANGE_START", 1)
	viper.SetDefault("RACK_RANGE_END", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
