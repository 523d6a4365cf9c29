package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        string `env:"PORT" envDefault:"5432"`
	User        string `env:"USER"`
	Password    string `env:"PASSWORD"`
	Name        string `env:"NAME"`
	SSLMode     string `env:"SSLMODE" envDefault:"disable"`
	TimeZone    string `env:"TIMEZONE" envDefault:"Asia/Kolkata"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

// DSN renders the key/value connection string understood by the pgx driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
}

type EmailConfig struct {
	APIKey     string `env:"BREVO_API_KEY"`
	BaseURL    string `env:"BREVO_BASE_URL" envDefault:"https://api.brevo.com"`
	Sender     string `env:"EMAIL_SENDER"`
	SenderName string `env:"EMAIL_SENDER_NAME" envDefault:"PESUConnect"`
}

func (c EmailConfig) Enabled() bool {
	return c.APIKey != "" && c.Sender != ""
}

type AppConfig struct {
	Name             string        `env:"APP_NAME" envDefault:"PESUConnect"`
	Env              string        `env:"APP_ENV" envDefault:"development"`
	Port             string        `env:"APP_PORT" envDefault:":8080"`
	BaseURL          string        `env:"APP_URL" envDefault:"http://localhost:8080"`
	JWTSecret        string        `env:"JWT_SECRET"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"72h"`
	CloudinaryURL    string        `env:"CLOUDINARY_URL"`
	ReceiptsEnabled  bool          `env:"RECEIPTS_ENABLED" envDefault:"false"`
	ReminderSchedule string        `env:"REMINDER_SCHEDULE" envDefault:"0 8 * * *"`

	DB    DBConfig `envPrefix:"DB_"`
	Email EmailConfig
}

func (c *AppConfig) Production() bool {
	return c.Env == "production"
}

// Load reads .env when present and then the process environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}
	return Parse()
}

func Parse() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
