package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every environment-driven setting. It is loaded once in
// main and handed to constructors; nothing else reads the environment.
type Config struct {
	Port       string
	MongoURI   string
	DBName     string
	JWTSecret  string
	BcryptCost int
	S3Region   string
	S3Bucket   string
	SESSender  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		MongoURI:   os.Getenv("MONGO_URI"),
		DBName:     getEnv("DB_NAME", "vitatrack"),
		JWTSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		BcryptCost: bcrypt.DefaultCost,
		S3Region:   getEnv("S3_REGION", os.Getenv("AWS_REGION")),
		S3Bucket:   os.Getenv("S3_BUCKET"),
		SESSender:  os.Getenv("SES_EMAIL"),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
		)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}

	if v := os.Getenv("HASH_SALT_ROUNDS"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HASH_SALT_ROUNDS %q: %w", v, err)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
