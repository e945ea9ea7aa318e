package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-quizdeck/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // QUIZDECK_CONFIG: config file name or path
	Output     string // QUIZDECK_OUTPUT: output file path
}

// knownEnvVars lists valid QUIZDECK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"QUIZDECK_CONFIG": true,
	"QUIZDECK_OUTPUT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("QUIZDECK_CONFIG"),
		Output:     os.Getenv("QUIZDECK_OUTPUT"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized QUIZDECK_* variable,
// in name order.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "QUIZDECK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// resolveConfig loads the config named by the --config flag, falling back to
// QUIZDECK_CONFIG, then to defaults.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveOutputPath picks the output file: --output, then QUIZDECK_OUTPUT,
// then the config file value.
func resolveOutputPath(flagOutput string, env *envConfig, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if env.Output != "" {
		return env.Output
	}
	return cfg.Output.Path
}
