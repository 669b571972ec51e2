// Demo command walks the four access modes of a guarded counter collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/counter"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
)

// Flag values for the demo command; zero means "use config".
var (
	flagDemoCount int
	flagDemoDelta int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk the four access modes of a guarded counter collection",
	Long: `Demo builds a satchel of counters and exercises each access mode in turn:

  1. Values: a mutable working copy. Element mutation sticks; clearing the
     copy does not touch the satchel.
  2. Immutable: a read-only view. Clearing it is rejected.
  3. Iterator: a single-pass traversal. Removing through it is rejected.
  4. Each: a per-element callback. The sequence is never revealed.

The satchel's content is printed after each scenario, showing that element
state changed while length and order never did.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoCount, "count", 0, "number of counters (overrides config)")
	demoCmd.Flags().IntVar(&flagDemoDelta, "delta", 0, "value added to each counter per pass (overrides config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	count := cfg.GetInt(cfgKeyDemoCount)
	if cmd.Flags().Changed("count") {
		count = flagDemoCount
	}
	delta := cfg.GetInt(cfgKeyDemoDelta)
	if cmd.Flags().Changed("delta") {
		delta = flagDemoDelta
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	elems := make([]*counter.Counter, 0, count)
	for k := 1; k <= count; k++ {
		elems = append(elems, counter.New(k))
	}
	s := satchel.New(elems)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Original: %s\n", s)

	// Mutable copy: element mutation sticks, structural mutation does not.
	values := s.Values()
	for _, c := range values {
		c.Add(delta)
	}
	values = values[:0] // destroys only the caller's copy
	fmt.Fprintf(out, "Getter, cleared: copy len %d, satchel %s\n", len(values), s)

	// Read-only view: element mutation allowed, clearing rejected.
	view := s.Immutable()
	for i := 0; i < view.Len(); i++ {
		view.At(i).Add(delta)
	}
	if err := view.Clear(); err != nil {
		fmt.Fprintf(out, "Immutable, clear attempted: %v\n", err)
	}
	fmt.Fprintf(out, "Immutable: %s\n", s)

	// Traversal: element mutation allowed, removal rejected.
	it := s.Iterator()
	for it.Next() {
		it.Value().Add(delta)
	}
	it = s.Iterator()
	if it.Next() {
		if err := it.Remove(); err != nil {
			fmt.Fprintf(out, "Iterator, remove attempted: %v\n", err)
		}
	}
	fmt.Fprintf(out, "Iterator: %s\n", s)

	// Callback: the sequence container is never revealed.
	s.Each(func(c *counter.Counter) { c.Add(delta) })
	s.Each((*counter.Counter).Double)
	fmt.Fprintf(out, "Lambda, not exposed: %s\n", s)

	return nil
}
