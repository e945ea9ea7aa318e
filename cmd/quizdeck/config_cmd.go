package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var cfgName string
	fs.StringVarP(&cfgName, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfigWithHints(cfgName, envCfg)
	if err != nil {
		return err
	}
	cfg.Output.Path = resolveOutputPath("", envCfg, cfg)

	data, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
