package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is read once at startup and injected; nothing reads the
// environment after Load returns.
type Config struct {
	Addr        string
	JWTSecret   string
	MongoURI    string
	MongoDBName string
	MySQLDSN    string
}

// Load reads the .env file named by START (if set) and validates the
// required variables. CONNECTION_STR and SECRET_KEY keep their
// historical names.
func Load() *Config {
	if envFile := os.Getenv("START"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("Env file %s not found", envFile)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Addr:        ":" + getEnv("PORT", "8080"),
		JWTSecret:   os.Getenv("SECRET_KEY"),
		MongoURI:    os.Getenv("CONNECTION_STR"),
		MongoDBName: os.Getenv("MONGO_DB_NAME"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
	}

	if cfg.JWTSecret == "" {
		log.Fatalf("SECRET_KEY is not set in environment")
	}
	if cfg.MongoURI == "" {
		log.Fatalf("CONNECTION_STR is not set in environment")
	}
	if cfg.MongoDBName == "" {
		log.Fatalf("MONGO_DB_NAME is not set in environment")
	}
	if cfg.MySQLDSN == "" {
		log.Fatalf("MYSQL_DSN is not set in environment")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
