package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN  string
	FRONTEND_URL string

	GOOGLE_CLIENT_ID     string
	GOOGLE_CLIENT_SECRET string
	GOOGLE_REDIRECT_URL  string

	S3_REGION            string
	S3_BUCKET            string
	S3_ACCESS_KEY_ID     string
	S3_SECRET_ACCESS_KEY string
	S3_ENDPOINT          string
	S3_PUBLIC_BASE_URL   string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
	FRONTEND_URL = getEnv("FRONTEND_URL", "http://localhost:3000")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")

	S3_REGION = mustEnv("S3_REGION")
	S3_BUCKET = mustEnv("S3_BUCKET")
	S3_ACCESS_KEY_ID = mustEnv("S3_ACCESS_KEY_ID")
	S3_SECRET_ACCESS_KEY = mustEnv("S3_SECRET_ACCESS_KEY")
	S3_ENDPOINT = getEnv("S3_ENDPOINT", "")
	S3_PUBLIC_BASE_URL = getEnv("S3_PUBLIC_BASE_URL", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
