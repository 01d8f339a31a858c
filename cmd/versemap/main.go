// Package main provides the CLI entry point for versemap, a bidirectional
// Bible versification mapper.
//
// Usage:
//
//	versemap map <left> <reference>      # Map a reference into the pivot system
//	versemap unmap <left> <reference>     # Map a pivot reference back into <left>
//	versemap check <left>                 # Validate a configured mapping table
//	versemap fetch <left>                 # Download a mapping table over FTP
//
// Examples:
//
//	versemap map Vulg "Ps.9.1"
//	versemap unmap Vulg "Ps.10.1"
//	versemap check Vulg
package main

import (
	"fmt"
	"os"

	"github.com/focuswithjustin/versemap/pkg/mapconfig"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *mapconfig.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "versemap",
	Short: "Bidirectional Bible versification mapper",
	Long: `versemap translates verse references between an arbitrary source
versification and a fixed pivot versification (conventionally KJV).

SUBCOMMANDS:
  map     Translate a left-system reference into the pivot system
  unmap   Translate a pivot-system reference into a left system
  check   Validate a configured mapping table and report build errors
  fetch   Download a mapping table file over FTP

Examples:
  versemap map Vulg "Ps.9.1"
  versemap unmap Vulg "Ps.10.1"
  versemap check Vulg`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		var err error
		if cfgFile != "" {
			cfg, err = mapconfig.Load(cfgFile)
		} else {
			cfg, err = mapconfig.Load("versemap.yaml")
		}
		if err != nil {
			cfg = mapconfig.DefaultConfig()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default versemap.yaml)")
	rootCmd.AddCommand(mapCmd, unmapCmd, checkCmd, fetchCmd)
}
