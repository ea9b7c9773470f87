package sonar

import (
	"os"
)

// Environment variables read by the board mains
const (
	EnvLogLevel = "SONAR_LOG_LEVEL"
)

func GetEnv(name string, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

// LogLevel is the diagnostic log level, "info" unless overridden
func LogLevel() string {
	return GetEnv(EnvLogLevel, "info")
}
