package scenario

import _ "embed"

//go:embed default.yaml
var defaultScenarios []byte

// Default returns the built-in walkthrough scenarios.
func Default() (*File, error) {
	return Load(defaultScenarios)
}
