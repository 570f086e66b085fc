package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the prediction service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port the HTTP API listens on.
// - ModelPath: Filesystem path of the trained regressor artifact.
// - Provider: Settings of the geocoding provider used to resolve place names.
// - ShutdownTimeout: How long in-flight requests may run after a shutdown signal.
type Config struct {
	Env             string         // Env is the current environment: local, development, production.
	Port            int            // Port is the HTTP API port.
	ModelPath       string         // ModelPath points to the estimator artifact.
	Provider        ProviderConfig // Provider holds the geocoding provider configuration.
	ShutdownTimeout time.Duration  // ShutdownTimeout bounds graceful shutdown.
}

// ProviderConfig holds the geocoding provider settings.
type ProviderConfig struct {
	Type      string        // Type selects the provider: nominatim, google, visicom.
	APIKey    string        // APIKey is required by google and visicom.
	RateLimit int           // RateLimit is the outbound request budget per second, unlimited when zero.
	UserAgent string        // UserAgent identifies this client to Nominatim.
	Fallback  bool          // Fallback enables progressive address simplification.
	Timeout   time.Duration // Timeout of a single provider HTTP call.
}

// MustLoad reads the configuration from the environment (optionally seeded by a .env file
// and a YAML file named by HELIOS_CONFIG_FILE) and panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HELIOS")
	v.AutomaticEnv()
	setDefaults(v)

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("provider_rate_limit"))
	if err != nil {
		panic("failed to parse provider rate limit from configuration, must be an integer types")
	}

	timeout, err := time.ParseDuration(v.GetString("provider_timeout"))
	if err != nil {
		panic("failed to parse provider timeout from configuration")
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		panic("failed to parse shutdown timeout from configuration")
	}

	fallback, err := strconv.ParseBool(v.GetString("provider_fallback"))
	if err != nil {
		panic("failed to parse provider fallback flag from configuration")
	}

	return &Config{
		Env:       v.GetString("env"),
		Port:      port,
		ModelPath: v.GetString("model_path"),
		Provider: ProviderConfig{
			Type:      v.GetString("provider_type"),
			APIKey:    v.GetString("provider_key"),
			RateLimit: rateLimit,
			UserAgent: v.GetString("provider_user_agent"),
			Fallback:  fallback,
			Timeout:   timeout,
		},
		ShutdownTimeout: shutdownTimeout,
	}
}

// setDefaults registers the fallback value of every key. Keys are flat so that
// AutomaticEnv maps them to HELIOS_<KEY> without a key replacer.
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("port", "8000")
	v.SetDefault("model_path", "solar_power_model.json")
	v.SetDefault("provider_type", "nominatim")
	v.SetDefault("provider_key", "")
	v.SetDefault("provider_rate_limit", "0")
	v.SetDefault("provider_user_agent", "solar_predictor")
	v.SetDefault("provider_fallback", "false")
	v.SetDefault("provider_timeout", "10s")
	v.SetDefault("shutdown_timeout", "5s")
}
