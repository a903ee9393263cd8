package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = ":8080"
	defaultDifficulty = "easy"
)

// LoadDotEnv reads variables from .env files into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	if !strings.Contains(port, ":") {
		port = ":" + port
	}
	return port
}

// Difficulty is the name of the difficulty the server deals on startup.
func Difficulty() string {
	difficulty, ok := os.LookupEnv("APP_DIFFICULTY")
	if !ok || difficulty == "" {
		return defaultDifficulty
	}
	return difficulty
}

// Development reports whether DEVELOPMENT is set to anything but "0" or
// "false".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	development = strings.TrimSpace(development)
	return development != "" && development != "0" &&
		!strings.EqualFold(development, "false")
}
