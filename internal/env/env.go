package env

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// LoadEnvironmentVariables loads the .env file or crashes the program with an error
func LoadEnvironmentVariables() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, ".env error: %s\n", err)
		os.Exit(1)
	}
}

// String reads a string variable, with a default for when it isn't set.
func String(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// Decimal reads a decimal variable, with a default for when it isn't set or
// doesn't parse.
func Decimal(key string, fallback string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if number, err := decimal.NewFromString(value); err == nil {
			return number
		}
	}

	return decimal.RequireFromString(fallback)
}

// Duration reads a duration variable like "30m", with a default for when it
// isn't set or doesn't parse.
func Duration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}

	return fallback
}
