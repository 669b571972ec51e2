// Package main provides the satchel CLI: a guarded-collection walkthrough
// plus two small reflection and physics utilities.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
