package config

import (
	"log/slog"
	"os"
	"reflect"
	"strings"
)

type Config struct {
	DISCORD_TOKEN       string
	TELEGRAM_TOKEN      string
	CONFIG_FILE         string
	REPLACEMENT_DOMAINS string
	PROBE_HOSTS         string
	LOG_LEVEL           string
}

func FromEnv() Config {
	cfg := Config{
		CONFIG_FILE: "config.yaml",
		PROBE_HOSTS: "true",
		LOG_LEVEL:   "info",
	}
	v := reflect.ValueOf(&cfg).Elem()

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		envVar := field.Name
		envValue, exists := os.LookupEnv(envVar)
		if exists {
			v.Field(i).SetString(envValue)
		}
	}

	return cfg
}

func (c Config) ProbeHosts() bool {
	switch strings.ToLower(strings.TrimSpace(c.PROBE_HOSTS)) {
	case "false", "0", "no", "off":
		return false
	}
	return true
}

// LogLevel maps LOG_LEVEL to a slog level, unknown values fall back to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LOG_LEVEL)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
