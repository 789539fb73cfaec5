package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// env returns the parsed value of key, or fallback when the variable is
// unset, blank or does not parse
func env[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envString(key, fallback string) string {
	return env(key, fallback, func(s string) (string, error) { return s, nil })
}

func envInt(key string, fallback int) int {
	return env(key, fallback, strconv.Atoi)
}

func envBool(key string, fallback bool) bool {
	return env(key, fallback, strconv.ParseBool)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return env(key, fallback, time.ParseDuration)
}

// envList splits a comma separated variable, dropping empty items
func envList(key string, fallback []string) []string {
	return env(key, fallback, func(s string) ([]string, error) {
		var items []string
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return fallback, nil
		}
		return items, nil
	})
}
