package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "ShowSearch/2 (+https://github.com/Belphemur/ShowSearch)"

const (
	// DefaultTVMazeBaseURL is the public TVmaze API root.
	DefaultTVMazeBaseURL = "https://api.tvmaze.com"
	// DefaultMissingImageURL replaces the poster of shows that have none.
	DefaultMissingImageURL = "https://tinyurl.com/tv-missing"
)

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	TVMazeBaseURL         string `mapstructure:"tvmaze_base_url"`
	MissingImageURL       string `mapstructure:"missing_image_url"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1h", etc.
	UserAgent             string `mapstructure:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	LogLevel string `mapstructure:"log_level"`
	Session  struct {
		Size int    `mapstructure:"size"` // Maximum number of live widgets kept in memory
		TTL  string `mapstructure:"ttl"`  // Idle lifetime of a session, Go duration string
	} `mapstructure:"session"`
	Cache struct {
		Type  string `mapstructure:"type"` // "memory" or "redis"
		Redis struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig("")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	apply(config)
}

// Reload reads the configuration again, optionally from an explicit file,
// and replaces the global configuration and log level.
func Reload(file string) error {
	config, err := LoadConfig(file)
	if err != nil {
		return err
	}
	apply(config)
	return nil
}

func apply(config *Config) {
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
}

// LoadConfig reads config.yaml from the working directory (or ./config) and the
// APP_* environment. A non-empty file overrides the search path.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	v.SetDefault("tvmaze_base_url", DefaultTVMazeBaseURL)
	v.SetDefault("missing_image_url", DefaultMissingImageURL)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("server.address", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("session.size", 1000)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("cache.type", "memory")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
