package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <left>",
	Short: "Validate a configured mapping table and report build errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := buildTable(args[0])
		if err != nil {
			return err
		}
		if !tbl.HasErrors() {
			fmt.Println("ok: no build errors")
			return nil
		}
		for _, e := range tbl.Diagnostics().BuildErrors() {
			fmt.Println(e)
		}
		return fmt.Errorf("versemap: %s failed to compile cleanly", args[0])
	},
}
