package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	LogFile     string
	OutputFile  string
	Threshold   int
	MetricsAddr string
}

// Load reads configuration from the environment, with an optional .env file
// filling in unset keys. Command-line flags layered on top take precedence.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("error while loading .env file: %v", err)
	}

	return &Config{
		LogFile:     cast.ToString(coalesce("LOG_FILE", "data/sample.log")),
		OutputFile:  cast.ToString(coalesce("OUTPUT_FILE", "results/log_analysis_results.csv")),
		Threshold:   cast.ToInt(coalesce("FAILED_LOGIN_THRESHOLD", 10)),
		MetricsAddr: cast.ToString(coalesce("METRICS_ADDR", "")),
	}
}

func coalesce(key string, value interface{}) interface{} {
	val, exist := os.LookupEnv(key)
	if exist {
		return val
	}
	return value
}
