package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tracedemo",
		Short: "Demonstrates stack-indented trace output",
		Long: `tracedemo runs small recursive programs through a tracer, so the indentation
markers can be seen. Stack capture is on when --capture is given, when the config
file sets it, or when TRACE_LIB_BACKTRACE / TRACE_BACKTRACE request it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("color", "auto", "colorize markers (auto|on|off)")
	root.PersistentFlags().String("config", "", "TOML file with capture and colors settings")
	root.PersistentFlags().Bool("capture", false, "capture call stacks regardless of the environment")

	root.AddCommand(newGroupCmd())
	root.AddCommand(newGoroutinesCmd())
	return root
}

// main executes the root command; a failed command exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
