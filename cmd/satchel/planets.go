// Planets command prints the weight of a body on every planet.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/planets"
)

var planetsCmd = &cobra.Command{
	Use:   "planets <earth-weight>",
	Short: "Print your weight on every planet",
	Long: `Planets converts a weight measured on Earth into the body's mass and
prints the equivalent weight on each planet, sun-outward.

Example:
  satchel planets 175`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanets,
}

func runPlanets(cmd *cobra.Command, args []string) error {
	earthWeight, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid earth weight %q: %w", args[0], err)
	}

	mass := planets.MassForEarthWeight(earthWeight)
	out := cmd.OutOrStdout()
	for _, p := range planets.All() {
		fmt.Fprintf(out, "Your weight on %s is %f\n", p, p.SurfaceWeight(mass))
	}
	return nil
}
