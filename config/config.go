package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/zerrors"
)

const EnvPrefix = "CHATSUMMARY"

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

var validate = validator.New()

// envBindings maps config keys to the environment variables that may set them,
// in order of precedence. The OLLAMA_* names are what existing deployments set.
var envBindings = map[string][]string{
	"inference.url":               {"CHATSUMMARY_INFERENCE_URL", "OLLAMA_NEGROK_URL"},
	"inference.api_key":           {"CHATSUMMARY_INFERENCE_API_KEY", "OLLAMA_API_KEY"},
	"inference.timeout":           {"CHATSUMMARY_INFERENCE_TIMEOUT"},
	"inference.retry_max":         {"CHATSUMMARY_INFERENCE_RETRY_MAX"},
	"inference.max_prompt_tokens": {"CHATSUMMARY_INFERENCE_MAX_PROMPT_TOKENS"},
	"server.host":                 {"CHATSUMMARY_SERVER_HOST"},
	"server.port":                 {"CHATSUMMARY_SERVER_PORT", "PORT"},
	"server.max_request_size":     {"CHATSUMMARY_SERVER_MAX_REQUEST_SIZE"},
	"log.level":                   {"CHATSUMMARY_LOG_LEVEL"},
	"auth.secret":                 {"CHATSUMMARY_AUTH_SECRET"},
	"auth.required":               {"CHATSUMMARY_AUTH_REQUIRED"},
	"telemetry.enabled":           {"CHATSUMMARY_TELEMETRY_ENABLED"},
	"telemetry.endpoint":          {"CHATSUMMARY_TELEMETRY_ENDPOINT"},
	"telemetry.service_name":      {"CHATSUMMARY_TELEMETRY_SERVICE_NAME"},
	"telemetry.insecure":          {"CHATSUMMARY_TELEMETRY_INSECURE"},
}

// LoadConfig loads the config file and ENV variables into a Config struct, applies
// defaults and validates the result. A missing config file is only an error when
// configFile is given explicitly.
func LoadConfig(configFile string) (*Config, error) {
	// Environment variables take precedence over config file
	loadDotEnv()

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config file not found, using environment only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every required setting is present. Failures are returned
// as a zerrors.ConfigurationError naming each offending key.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return zerrors.NewConfigurationError(err.Error())
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed %q", configKey(fe.Namespace()), fe.Tag()))
	}

	return zerrors.NewConfigurationError(strings.Join(problems, "; "))
}

// configKey turns a validator namespace such as Config.Inference.APIKey into
// inference.apikey so it can be matched against the documented settings.
func configKey(namespace string) string {
	_, key, _ := strings.Cut(namespace, ".")
	return strings.ToLower(key)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
