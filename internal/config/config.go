package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends for the card store.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

type Config struct {
	Addr        string
	DBPath      string
	Storage     string
	DeckFile    string
	LogLevel    string
	LogColors   bool
	ShuffleSeed int64

	PromptLabel          string
	TargetLabel          string
	TransliterationLabel string
	TargetRTL            bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Addr:        envOr("ADDR", ":8080"),
		DBPath:      envOr("DB_PATH", "file:flashdeck.db"),
		Storage:     strings.ToLower(envOr("STORAGE", StorageSQLite)),
		DeckFile:    envOr("DECK_FILE", "~/.flashdeck.json"),
		LogLevel:    envOr("LOG_LEVEL", "INFO"),
		LogColors:   envBoolOr("LOG_COLORS", true),
		ShuffleSeed: int64(envIntOr("SHUFFLE_SEED", 0)),

		PromptLabel:          envOr("PROMPT_LABEL", "English"),
		TargetLabel:          envOr("TARGET_LABEL", "Arabic"),
		TransliterationLabel: envOr("TRANSLITERATION_LABEL", "Romanization"),
		TargetRTL:            envBoolOr("TARGET_RTL", true),
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	switch c.Storage {
	case StorageSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("DB_PATH cannot be empty when STORAGE=%s", StorageSQLite)
		}
	case StorageFile:
		if strings.TrimSpace(c.DeckFile) == "" {
			return fmt.Errorf("DECK_FILE cannot be empty when STORAGE=%s", StorageFile)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE must be one of %s, %s, %s (got %q)", StorageSQLite, StorageFile, StorageMemory, c.Storage)
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR (got %q)", c.LogLevel)
	}
	if c.PromptLabel == "" || c.TargetLabel == "" || c.TransliterationLabel == "" {
		return fmt.Errorf("card labels cannot be empty")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
