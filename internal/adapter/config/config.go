package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Auth     *Auth
	Kafka    *Kafka
	Admin    *Admin
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Auth struct {
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Kafka is disabled when Brokers is empty.
type Kafka struct {
	Brokers string `env:"KAFKA_BROKERS"`
	Topic   string `env:"KAFKA_TOPIC"`
	Workers int    `env:"KAFKA_WORKERS"`
}

type Admin struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

func NewConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return NewConfigFromArgs(os.Args[1:])
}

// NewConfigFromArgs parses command line flags first, environment variables override them.
func NewConfigFromArgs(args []string) (*Config, error) {
	var db Database
	var http HTTP
	var auth Auth
	var kafka Kafka
	var admin Admin
	var app App

	flags := flag.NewFlagSet("bakery", flag.ContinueOnError)
	flags.StringVar(&db.DSN, "d", "", "Database string")
	flags.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flags.DurationVar(&auth.TokenTTL, "t", 12*time.Hour, "Token time to live")
	flags.StringVar(&kafka.Brokers, "k", "", "Kafka brokers, comma separated")
	flags.StringVar(&kafka.Topic, "topic", "bakery.orders", "Kafka topic for order events")
	flags.IntVar(&kafka.Workers, "w", 2, "Order event publishing workers")
	flags.StringVar(&admin.Email, "admin-email", "", "Bootstrap administrator email")
	flags.StringVar(&admin.Password, "admin-password", "", "Bootstrap administrator password")
	flags.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flags.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	err := flags.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&kafka)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&admin)
	if err != nil {
		return nil, fmt.Errorf("error parsing admin config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Auth:     &auth,
		Kafka:    &kafka,
		Admin:    &admin,
		App:      &app,
	}

	return &config, nil
}
