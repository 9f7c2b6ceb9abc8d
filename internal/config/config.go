package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultFile is the project file read when LOCSTRING_CONFIG is unset.
const DefaultFile = "locstring.toml"

type Config struct {
	CurrentFile    string `toml:"current_file"`
	NewerFile      string `toml:"newer_file"`
	OutputFile     string `toml:"output_file"`
	LegacyFile     string `toml:"legacy_file"`
	IncompleteFile string `toml:"incomplete_file"`
	WorkerCount    int    `toml:"worker_count"`
	LogLevel       string `toml:"log_level"`
	ReportFormat   string `toml:"report_format"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		CurrentFile:    "locale_string.txt",
		NewerFile:      "locale_string2.txt",
		OutputFile:     "locale_string_new.txt",
		LegacyFile:     "locale_string_old.txt",
		IncompleteFile: "locale_string_incomplete.txt",
		WorkerCount:    4,
		LogLevel:       "info",
		ReportFormat:   "text",
	}
}

// Load builds the configuration from defaults, the optional TOML project
// file and finally environment variables (a .env file is loaded first).
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := Defaults()

	path := getEnv("LOCSTRING_CONFIG", DefaultFile)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", path).Msg("Ignoring unreadable config file")
			cfg = Defaults()
		}
	} else {
		log.Debug().Str("file", path).Msg("Loaded config file")
	}

	cfg.CurrentFile = getEnv("LOCSTRING_CURRENT_FILE", cfg.CurrentFile)
	cfg.NewerFile = getEnv("LOCSTRING_NEWER_FILE", cfg.NewerFile)
	cfg.OutputFile = getEnv("LOCSTRING_OUTPUT_FILE", cfg.OutputFile)
	cfg.LegacyFile = getEnv("LOCSTRING_LEGACY_FILE", cfg.LegacyFile)
	cfg.IncompleteFile = getEnv("LOCSTRING_INCOMPLETE_FILE", cfg.IncompleteFile)
	cfg.WorkerCount = getEnvInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ReportFormat = getEnv("REPORT_FORMAT", cfg.ReportFormat)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
