package utils

import (
	"log"
	"os"
	"strconv"
)

// GetEnvString returns defaultValue only when key is unset, so an explicit
// empty value is honoured.
func GetEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	raw, ok := lookupNonEmpty(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("env %s=%q is not an integer, falling back to %d", key, raw, defaultValue)
		return defaultValue
	}
	return parsed
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw, ok := lookupNonEmpty(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("env %s=%q is not a boolean, falling back to %t", key, raw, defaultValue)
		return defaultValue
	}
	return parsed
}

func lookupNonEmpty(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
