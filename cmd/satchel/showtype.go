// Showtype command prints a reflective synopsis of a registered type.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/counter"
	"github.com/mesh-intelligence/satchel/internal/inspect"
	"github.com/mesh-intelligence/satchel/internal/planets"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
)

// typeRegistry holds the types showtype can describe, in listing order.
var typeRegistry = inspect.NewRegistry()

func init() {
	typeRegistry.Register("Counter", counter.Counter{})
	typeRegistry.Register("Planet", planets.Planet{})
	typeRegistry.Register("Satchel", satchel.Satchel[int]{})
	typeRegistry.Register("Iterator", satchel.Iterator[int]{})
}

var showtypeCmd = &cobra.Command{
	Use:   "showtype [name]",
	Short: "Print a reflective synopsis of a registered type",
	Long: `Showtype looks the name up in a registry of module types and prints the
type's fields, method set, and zero value. With no argument it lists the
registered names.

Example:
  satchel showtype Planet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShowtype,
}

func runShowtype(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range typeRegistry.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	synopsis, err := typeRegistry.Synopsis(args[0])
	if err != nil {
		return fmt.Errorf("%w (valid: %s)", err, strings.Join(typeRegistry.Names(), ", "))
	}
	fmt.Fprint(out, synopsis)
	return nil
}
