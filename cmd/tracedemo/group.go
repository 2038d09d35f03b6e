package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Yokinman/trace"
)

func newGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group N K",
		Short: "Count the ways to group N items into K unordered sets",
		Args:  cobra.ExactArgs(2),
		RunE:  runGroup,
	}
}

func runGroup(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid N: %w", err)
	}
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid K: %w", err)
	}
	if n < 0 || k < 0 {
		return fmt.Errorf("N and K must not be negative")
	}

	cfg, err := tracerConfig(cmd)
	if err != nil {
		return err
	}
	t := cfg.Tracer()

	// a fresh goroutine keeps cobra's frames out of the traced stacks
	var g errgroup.Group
	g.Go(func() error {
		groupings(t, n, k)
		return nil
	})
	return g.Wait()
}

func groupings(t *trace.Tracer, n, k int) {
	t.Printf("# of ways to group %d items into %d unordered sets:", n, k)
	t.Printf("Result: %d", stirling(t, n, k))
}

// stirling returns the Stirling number of the second kind, S(n, k).
func stirling(t *trace.Tracer, n, k int) int {
	t.Printf("n:%d, k:%d", n, k)
	if n == k {
		return 1
	}
	if k == 0 || n < k {
		return 0
	}
	return stirling(t, n-1, k-1) + stirling(t, n-1, k)*k
}
