package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Razorpay   `yaml:"razorpay"`
	Sheets     `yaml:"sheets"`
	SMTP       `yaml:"smtp"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Razorpay struct {
	KeyID     string `yaml:"key_id" env:"RAZORPAY_KEY_ID" env-required:"true"`
	KeySecret string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET" env-required:"true"`
}

type Sheets struct {
	SpreadsheetID   string `yaml:"spreadsheet_id" env:"GOOGLE_SHEETS_SPREADSHEET_ID" env-required:"true"`
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_SERVICE_ACCOUNT_JSON" env-required:"true"`
	// Первая строка данных: строки выше заняты шапкой таблицы
	DataStartRow int `yaml:"data_start_row" env-default:"6"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
