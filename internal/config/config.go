package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/RMahshie/fretdrill/pkg/note"
)

// ErrInvalidConfig is returned when a quiz setting cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Quiz   QuizConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	LogLevel       string
}

// QuizConfig holds the defaults for the fretboard drill. Command line flags
// override Tuning and Frets.
type QuizConfig struct {
	Tuning   []note.PitchClass
	Frets    int
	Seed     uint64
	LogLevel string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("SERVER_LOG_LEVEL", "info")
	v.SetDefault("QUIZ_LOG_LEVEL", "warn")
	v.SetDefault("QUIZ_TUNING", "E A D G B E")
	v.SetDefault("QUIZ_FRETS", 22)
	v.SetDefault("QUIZ_SEED", 0)

	// Environment variables override .env file values
	v.AutomaticEnv()

	// Read from .env files based on environment
	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read .env.%s: %w", env, err)
		}
	}

	var config Config
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = env
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.Server.LogLevel = v.GetString("SERVER_LOG_LEVEL")
	config.Quiz.LogLevel = v.GetString("QUIZ_LOG_LEVEL")

	seed, err := strconv.ParseUint(strings.TrimSpace(v.GetString("QUIZ_SEED")), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: QUIZ_SEED must be a non-negative integer: %w", ErrInvalidConfig, err)
	}
	config.Quiz.Seed = seed

	tuning, err := parseTuning(v.GetString("QUIZ_TUNING"))
	if err != nil {
		return nil, err
	}
	config.Quiz.Tuning = tuning

	config.Quiz.Frets = v.GetInt("QUIZ_FRETS")
	if config.Quiz.Frets < 1 {
		return nil, fmt.Errorf("%w: QUIZ_FRETS must be at least 1, got %d", ErrInvalidConfig, config.Quiz.Frets)
	}

	log.Debug().
		Str("env", config.Server.Env).
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Int("frets", config.Quiz.Frets).
		Int("strings", len(config.Quiz.Tuning)).
		Msg("Configuration loaded")

	return &config, nil
}

// parseTuning accepts note names separated by spaces or commas.
func parseTuning(s string) ([]note.PitchClass, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: QUIZ_TUNING has no notes", ErrInvalidConfig)
	}

	tuning := make([]note.PitchClass, 0, len(fields))
	for _, f := range fields {
		pc, err := note.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: QUIZ_TUNING: %w", ErrInvalidConfig, err)
		}
		tuning = append(tuning, pc)
	}
	return tuning, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
