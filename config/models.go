package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance. It is never modified once loaded.
type Config struct {
	Inference InferenceConfig `mapstructure:"inference" yaml:"inference"`
	Server    ServerConfig    `mapstructure:"server"    yaml:"server"`
	Log       LogConfig       `mapstructure:"log"       yaml:"log"`
	Auth      AuthConfig      `mapstructure:"auth"      yaml:"auth"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
}

// InferenceConfig configures the outbound call to the inference backend.
type InferenceConfig struct {
	URL string `mapstructure:"url"     yaml:"url"     validate:"required,url"`
	// APIKey is loaded from ENV not config file.
	APIKey  string        `mapstructure:"api_key" yaml:"-"       validate:"required" json:"-"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
	// RetryMax is the number of additional attempts. 0 disables retries.
	RetryMax int `mapstructure:"retry_max" yaml:"retry_max" validate:"gte=0,lte=10"`
	// MaxPromptTokens rejects prompts larger than this many tokens. 0 disables the check.
	MaxPromptTokens int `mapstructure:"max_prompt_tokens" yaml:"max_prompt_tokens" validate:"gte=0"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"             yaml:"host"`
	Port           int    `mapstructure:"port"             yaml:"port"             validate:"gt=0,lte=65535"`
	MaxRequestSize int64  `mapstructure:"max_request_size" yaml:"max_request_size" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"   yaml:"-"        validate:"required_if=Required true" json:"-"`
	Required bool   `mapstructure:"required" yaml:"required"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"      yaml:"enabled"`
	Endpoint    string `mapstructure:"endpoint"     yaml:"endpoint"     validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	Insecure    bool   `mapstructure:"insecure"     yaml:"insecure"`
}

const (
	DefaultInferenceTimeout = 60 * time.Second
	DefaultServerPort       = 8000
	DefaultMaxRequestSize   = 5 << 20 // 5MB
	DefaultLogLevel         = "info"
	DefaultServiceName      = "chatsummary"
)

func defaultConfig() Config {
	return Config{
		Inference: InferenceConfig{
			Timeout: DefaultInferenceTimeout,
		},
		Server: ServerConfig{
			Port:           DefaultServerPort,
			MaxRequestSize: DefaultMaxRequestSize,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Telemetry: TelemetryConfig{
			ServiceName: DefaultServiceName,
		},
	}
}
