package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yokinman/trace"
)

// tracerConfig builds a trace configuration from the config file and flags.
// Flags set on the command line override the file; unset capture falls back to the environment.
func tracerConfig(cmd *cobra.Command) (*trace.Config, error) {
	root := cmd.Root()
	cfg := trace.New().Writer(cmd.OutOrStdout())

	path, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		fc, err := trace.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if _, err := fc.Apply(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if root.PersistentFlags().Changed("color") {
		s, err := root.PersistentFlags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
		mode, err := trace.ParseColorMode(s)
		if err != nil {
			return nil, err
		}
		cfg.Colors(mode)
	}

	if root.PersistentFlags().Changed("capture") {
		on, err := root.PersistentFlags().GetBool("capture")
		if err != nil {
			return nil, fmt.Errorf("failed to get capture flag: %w", err)
		}
		cfg.Capture(on)
	}

	return cfg, nil
}
