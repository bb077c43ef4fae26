package config

import "time"

// Config holds all application configuration.
// It is constructed once at process start and passed to the components that need it.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret" validate:"required,min=32"`
	BCryptCost                  int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gtfield=TokenLifetimeMinutes"`
}

// ScheduleConfig controls how review dates are computed.
type ScheduleConfig struct {
	// Timezone is the IANA zone every "now" and every calendar-aware interval is evaluated in.
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
}

// MailConfig configures delivery of verification codes through Amazon SES.
// An empty FromEmail disables delivery; codes are then logged at debug level.
type MailConfig struct {
	AWSRegion string `mapstructure:"aws_region" validate:"required_with=FromEmail"`
	FromEmail string `mapstructure:"from_email" validate:"omitempty,email"`
	FromName  string `mapstructure:"from_name"`
}

// Location resolves Timezone. Load has already validated it.
func (c ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
