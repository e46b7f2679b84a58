package utils

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Configuration is read before any logger exists, so values that fail to parse
// are remembered here and reported once the logger is up.
var (
	invalidEnvMu   sync.Mutex
	invalidEnvKeys = make(map[string]struct{})
)

func recordInvalidEnv(key string) {
	invalidEnvMu.Lock()
	defer invalidEnvMu.Unlock()
	invalidEnvKeys[key] = struct{}{}
}

func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		recordInvalidEnv(key)
		return defaultValue
	}
	return intValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		recordInvalidEnv(key)
		return defaultValue
	}
	return boolValue
}

// InvalidEnvKeys lists, sorted, the keys whose values could not be parsed and
// were replaced by their defaults.
func InvalidEnvKeys() []string {
	invalidEnvMu.Lock()
	defer invalidEnvMu.Unlock()

	keys := make([]string, 0, len(invalidEnvKeys))
	for key := range invalidEnvKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
