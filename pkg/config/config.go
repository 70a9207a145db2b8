package config

import (
	"log"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress string `envconfig:"API_ADDRESS" default:":8080"`
	JWTSecret  string `envconfig:"JWT_SECRET" required:"true"`

	PostgresAddress  string `envconfig:"POSTGRES_DB_ADDRESS" default:"localhost:5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" required:"true"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	PostgresDB       string `envconfig:"POSTGRES_DB" required:"true"`

	// Cron specs for the reminder scheduler, server-local time
	ReminderCronSpec string `envconfig:"REMINDER_CRON_SPEC" default:"0 19 * * *"`
	DailyResetSpec   string `envconfig:"DAILY_RESET_SPEC" default:"5 0 * * *"`
}

func New() *Config {
	once.Do(func() {
		// Missing .env is fine in containers where envs come from the runtime
		_ = godotenv.Load("./configs/.env")
		instance = &Config{}
		if err := envconfig.Process("", instance); err != nil {
			log.Fatal("parsing envs error: ", err)
		}
	})
	return instance
}
