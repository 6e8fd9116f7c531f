package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SCENARIO_PATH", "")
	t.Setenv("SCENARIO_KIND", "")
	t.Setenv("STOP_ON_FAILURE", "")

	cfg := Load()
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.ScenarioPath != "" {
		t.Errorf("Expected empty scenario path, got %q", cfg.ScenarioPath)
	}
	if cfg.Kind != "" {
		t.Errorf("Expected empty kind, got %q", cfg.Kind)
	}
	if cfg.StopOnFailure {
		t.Errorf("Expected StopOnFailure to default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCENARIO_PATH", "/tmp/scenarios.yaml")
	t.Setenv("SCENARIO_KIND", "doubly")
	t.Setenv("STOP_ON_FAILURE", "true")

	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.ScenarioPath != "/tmp/scenarios.yaml" {
		t.Errorf("Expected scenario path override, got %q", cfg.ScenarioPath)
	}
	if cfg.Kind != "doubly" {
		t.Errorf("Expected kind doubly, got %q", cfg.Kind)
	}
	if !cfg.StopOnFailure {
		t.Errorf("Expected StopOnFailure to be true")
	}
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("STOP_ON_FAILURE", "sometimes")

	if Load().StopOnFailure {
		t.Errorf("Expected invalid bool to fall back to false")
	}
}
