package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	SQLitePath string
	LogFile    string
	LogLevel   string
	Debug      bool // Forces debug level regardless of LogLevel
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	sqlitePath := getenv("SQLITE_PATH", "./ocean.db")
	logFile := getenv("LOG_FILE", "./oceanguard.log")
	logLevel := getenv("LOG_LEVEL", "info")
	debug := getenvBool("DEBUG", false)

	if debug {
		logLevel = "debug"
	}

	return Config{
		SQLitePath: sqlitePath,
		LogFile:    logFile,
		LogLevel:   logLevel,
		Debug:      debug,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
