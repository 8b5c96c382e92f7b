package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadEnv loads variables from .env into the process environment when the
// file is present. Missing file is not an error.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		return errors.Wrapf(err, "failed to load .env")
	}

	return nil
}
