// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every setting the CLI understands.
type Config struct {
	WordsFile string // WORDS_FILE; empty means the embedded list
	DailySalt string // DAILY_SALT
	LogLevel  string // LOG_LEVEL
	LogFormat string // LOG_FORMAT: "console" or "json"
}

// Load reads .env files (missing files are ignored) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return Config{
		WordsFile: getEnv("WORDS_FILE", ""),
		DailySalt: getEnv("DAILY_SALT", "wordlebot"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "console")),
	}
}

// Logger builds the process logger and sets the global level.
// An unknown level leaves the global level untouched.
func (c Config) Logger() zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogFormat == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
