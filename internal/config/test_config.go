package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the database settings of integration tests from the .env file or environment variables.
// Any missing TEST_DB_* variable yields a Config with an empty Database, so tests can fall back to their own DSN.
func LoadTestConfig() (*Config, error) {
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}

	host := os.Getenv("TEST_DB_HOST")
	portStr := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	name := os.Getenv("TEST_DB_NAME")
	if host == "" || portStr == "" || user == "" || password == "" || name == "" {
		return cfg, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}

	cfg.Database = DatabaseConfig{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		DBName:   name,
	}
	return cfg, nil
}
