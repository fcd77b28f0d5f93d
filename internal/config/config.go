package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven configuration. It is built once in main
// and passed down explicitly; nothing reads the process environment after
// startup.
type Config struct {
	Addr        string `envconfig:"ADDR" default:":8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	SMTPHost  string `envconfig:"SMTP_HOST"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser  string `envconfig:"SMTP_USER"`
	SMTPPass  string `envconfig:"SMTP_PASS"`
	EmailFrom string `envconfig:"SMTP_FROM"`
	// AdminEmail receives the operator copy of every order notification.
	AdminEmail string `envconfig:"ADMIN_EMAIL"`
}

// Load reads an optional .env file and binds environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HasSMTP reports whether enough SMTP settings are present to attempt
// sending mail. Missing configuration is not fatal: order notifications
// degrade to a logged failure.
func (c Config) HasSMTP() bool {
	return c.SMTPHost != "" && c.EmailFrom != "" && c.AdminEmail != ""
}
