package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	StaffToken   string
	Port         string
	SMTP         SMTPConfig
}

// SMTPConfig holds the mail settings used for front-desk notifications.
// Notifications are disabled when Host is empty.
type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	FrontDesk string
}

// GetStaffToken returns the StaffToken from the config
func (c *AppConfig) GetStaffToken() string {
	return c.StaffToken
}

// MailEnabled reports whether callback notification mail is configured.
func (c *AppConfig) MailEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.FrontDesk != ""
}

// Load reads configuration from environment variables, honouring a local
// .env file when present.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	staffToken := os.Getenv("STAFF_TOKEN")
	if staffToken == "" {
		return nil, errors.New("missing STAFF_TOKEN environment variable")
	}

	return &AppConfig{
		DBURL:        dbURL,
		RedisAddress: redisAddress,
		StaffToken:   staffToken,
		Port:         getEnv("PORT", "8930"),
		SMTP: SMTPConfig{
			Host:      os.Getenv("SMTP_HOST"),
			Port:      getEnvAsInt("SMTP_PORT", 587),
			User:      os.Getenv("SMTP_USER"),
			Password:  os.Getenv("SMTP_PASSWORD"),
			FrontDesk: os.Getenv("FRONT_DESK_EMAIL"),
		},
	}, nil
}

func getEnv(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
