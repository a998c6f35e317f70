package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Settings are the process-level options read from the environment
type Settings struct {
	RatesFile string
	Addr      string
	LogLevel  string
	AsOf      time.Time
}

// LoadSettings reads settings from the environment, loading a .env file
// first when one exists
func LoadSettings() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		RatesFile: getEnv("JOBCOMP_RATES", ""),
		Addr:      getEnv("JOBCOMP_ADDR", ":8080"),
		LogLevel:  getEnv("JOBCOMP_LOG_LEVEL", "info"),
	}

	if v := getEnv("JOBCOMP_AS_OF", ""); v != "" {
		asOf, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("JOBCOMP_AS_OF: %w", err)
		}
		s.AsOf = asOf
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
