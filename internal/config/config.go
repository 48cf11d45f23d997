package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RobotsPerSession int
	ExportDir        string
	ExportPrefix     string
	BasePath         string
	Environment      string
}

// Load reads configuration from a .env file when present, falling back to
// process environment and defaults. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	robots, err := strconv.Atoi(getEnv("SURVEY_ROBOTS_PER_SESSION", "3"))
	if err != nil || robots <= 0 {
		robots = 3
	}

	return &Config{
		RobotsPerSession: robots,
		ExportDir:        getEnv("SURVEY_EXPORT_DIR", "."),
		ExportPrefix:     getEnv("SURVEY_EXPORT_PREFIX", "robot_assessments"),
		BasePath:         getEnv("SURVEY_BASE_PATH", ""),
		Environment:      getEnv("SURVEY_ENVIRONMENT", "development"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
