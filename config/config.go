package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Mail          MailConfig
	Contact       ContactConfig
	Tours         ToursConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
	AppEnv  string
}

// MailConfig configures the SMTP transport used for booking and contact
// notifications. The account identity doubles as the From address.
type MailConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	BusinessEmail string
}

// ContactConfig carries business contact details interpolated into email templates.
type ContactConfig struct {
	BusinessName  string
	WhatsAppPhone string
}

type ToursConfig struct {
	DataPath        string
	CacheTTLSeconds int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("BUSINESS_NAME", "Sanpark Angkor Tours")
	v.SetDefault("WHATSAPP_PHONE", "+855123456789")
	v.SetDefault("TOURS_DATA_PATH", "data/tours.json")
	v.SetDefault("TOURS_CACHE_TTL", 600)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "sanpark-tours-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "sanpark-angkor")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "sanpark-tours-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Business notifications fall back to the sending account itself
	businessEmail := v.GetString("BUSINESS_EMAIL")
	if businessEmail == "" {
		businessEmail = v.GetString("GMAIL_USER")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			GinMode: v.GetString("GIN_MODE"),
			AppEnv:  v.GetString("APP_ENV"),
		},
		Mail: MailConfig{
			Host:          v.GetString("SMTP_HOST"),
			Port:          v.GetInt("SMTP_PORT"),
			Username:      v.GetString("GMAIL_USER"),
			Password:      v.GetString("GMAIL_APP_PASSWORD"),
			BusinessEmail: businessEmail,
		},
		Contact: ContactConfig{
			BusinessName:  v.GetString("BUSINESS_NAME"),
			WhatsAppPhone: v.GetString("WHATSAPP_PHONE"),
		},
		Tours: ToursConfig{
			DataPath:        v.GetString("TOURS_DATA_PATH"),
			CacheTTLSeconds: v.GetInt("TOURS_CACHE_TTL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	// Mail credentials are optional in development, where sends go to a local
	// relay or fail visibly anyway
	if !c.IsDevelopment() {
		if c.Mail.Username == "" {
			return fmt.Errorf("GMAIL_USER is required")
		}
		if c.Mail.Password == "" {
			return fmt.Errorf("GMAIL_APP_PASSWORD is required")
		}
	}

	if c.Mail.Host == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port, got %d", c.Mail.Port)
	}

	if c.Tours.DataPath == "" {
		return fmt.Errorf("TOURS_DATA_PATH is required")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
