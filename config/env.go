package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMaxConns int32
	JWTSecret  string
	APIKey     string
	OriginURL  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxConns, _ := strconv.Atoi(os.Getenv("DB_MAX_CONNS"))
	if maxConns == 0 {
		maxConns = 10
	}

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("APP_PORT", getEnv("PORT", "5000")),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "storefront"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBMaxConns: int32(maxConns),
		// No fallback: token minting fails closed when the secret is absent.
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIKey:    getEnv("API_KEY", "dev-api-key-do-not-ship"),
		OriginURL: getEnv("ORIGIN_URL", "http://localhost:5173"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Server will run on port: %s", cfg.Port)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
