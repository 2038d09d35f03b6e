package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Yokinman/trace"
)

func newGoroutinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goroutines N",
		Short: "Trace N goroutines at once",
		Long: `goroutines runs a small recursion on N goroutines.

By default every goroutine shares one tracer state, so lines from one goroutine diff
against another's stack and the indentation can mislead. With --isolated each goroutine
uses its own state and its output is printed once all goroutines finish.`,
		Args: cobra.ExactArgs(1),
		RunE: runGoroutines,
	}
	cmd.Flags().Bool("isolated", false, "give each goroutine its own tracer state")
	return cmd
}

func runGoroutines(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid goroutine count %q", args[0])
	}
	isolated, err := cmd.Flags().GetBool("isolated")
	if err != nil {
		return fmt.Errorf("failed to get isolated flag: %w", err)
	}

	cfg, err := tracerConfig(cmd)
	if err != nil {
		return err
	}

	if !isolated {
		t := cfg.Tracer()

		var g errgroup.Group
		for i := 0; i < n; i++ {
			g.Go(func() error {
				t.Printf("goroutine %d: %d", i, stirling(t, 3, 2))
				return nil
			})
		}
		return g.Wait()
	}

	bufs := make([]bytes.Buffer, n)
	var g errgroup.Group
	for i := range bufs {
		t := cfg.Writer(&bufs[i]).State(trace.NewState()).Tracer()
		g.Go(func() error {
			t.Printf("goroutine %d: %d", i, stirling(t, 3, 2))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if _, err := cmd.OutOrStdout().Write(bufs[i].Bytes()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
