package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	AmqpURL string

	ContentAPIBaseURL string
	ContentDataset    string
	ContentToken      string

	PaystackSecretKey string

	MailAPIKey    string
	MailFrom      string
	BusinessEmail string

	BankName          string
	BankAccountName   string
	BankAccountNumber string

	SessionSecret string
	StoreBaseURL  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  os.Getenv("APP_ENV"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AmqpURL: os.Getenv("AMQP_URL"),

		ContentAPIBaseURL: os.Getenv("CONTENT_API_BASE_URL"),
		ContentDataset:    getEnv("CONTENT_DATASET", "production"),
		ContentToken:      os.Getenv("CONTENT_API_TOKEN"),

		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),

		MailAPIKey:    os.Getenv("MAIL_API_KEY"),
		MailFrom:      getEnv("MAIL_FROM", "noreply@adornia.shop"),
		BusinessEmail: os.Getenv("BUSINESS_EMAIL"),

		BankName:          getEnv("BANK_NAME", "Zenith Bank"),
		BankAccountName:   getEnv("BANK_ACCOUNT_NAME", "Adornia Sparks Ltd"),
		BankAccountNumber: os.Getenv("BANK_ACCOUNT_NUMBER"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		StoreBaseURL:  getEnv("STORE_BASE_URL", "https://adornia.shop"),
	}

	if cfg.DBHost == "" || cfg.SessionSecret == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
