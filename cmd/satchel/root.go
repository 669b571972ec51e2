// Root command for the satchel CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
)

// flagConfigDir is set by the --config-dir persistent flag.
var flagConfigDir string

// cfg holds the loaded configuration. Set by PersistentPreRunE so all
// subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:     "satchel",
	Short:   "Satchel demonstrates guarding a collection behind multiple access modes",
	Version: satchel.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		loaded, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(planetsCmd)
	rootCmd.AddCommand(showtypeCmd)
}
