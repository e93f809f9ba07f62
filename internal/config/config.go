// Package config loads server configuration from the environment. A
// .env file in the working directory is honoured when present (see
// cmd/server), but every value has a development default so the server
// starts with no configuration at all.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port   int
	DBPath string
}

func Load() Config {
	return Config{
		Port:   envInt("PORT", 8080),
		DBPath: envString("DB_PATH", "data/newsboard.db"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
