package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel      string
	ScenarioPath  string
	Kind          string
	StopOnFailure bool
}

// Load reads the harness configuration from the environment. An empty
// ScenarioPath selects the built-in scenarios and an empty Kind keeps the
// kind declared by each scenario.
func Load() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ScenarioPath:  getEnv("SCENARIO_PATH", ""),
		Kind:          getEnv("SCENARIO_KIND", ""),
		StopOnFailure: getEnvBool("STOP_ON_FAILURE", false),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
