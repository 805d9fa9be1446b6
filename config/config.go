package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Postgres connection settings
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis connection settings, used for the leaderboard cache
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret signs the authentication tokens
	JWTSecret string

	// ServerPort is the port the API listens on
	ServerPort string

	// ClientUrl is the origin allowed by CORS
	ClientUrl string

	// DefaultPassword overrides the seeded organizer password when set
	DefaultPassword string
)

// Init loads the .env file (if present) and resolves all configuration values
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "hackarena")

	RedisHost = getEnv("REDIS_HOST", "localhost")
	RedisPort = getEnv("REDIS_PORT", "6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	if JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set, using an insecure default")
		JWTSecret = "insecure-development-secret"
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
