// Package config holds configuration loading and logging setup.
package config

import (
	"os"
	"strconv"
)

// Default settings for the play binary. Each can be overridden by an
// environment variable, and the binary's flags override both.
const (
	defaultBoardSize  = 8
	defaultHumanColor = "black"
	defaultDifficulty = "medium"
)

// PlayConfig holds the defaults for a play session.
type PlayConfig struct {
	BoardSize  int
	HumanColor string
	Difficulty string
}

// LoadPlayConfig loads play defaults from the environment.
func LoadPlayConfig() *PlayConfig {
	return &PlayConfig{
		BoardSize:  getEnvInt("OTHELLO_BOARD_SIZE", defaultBoardSize),
		HumanColor: getEnv("OTHELLO_HUMAN_COLOR", defaultHumanColor),
		Difficulty: getEnv("OTHELLO_DIFFICULTY", defaultDifficulty),
	}
}

// getEnv returns the environment variable or the fallback if it is not set.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable parsed as an integer, or the
// fallback if it is not set or not a number.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
