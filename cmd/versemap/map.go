package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map <left> <reference>",
	Short: "Translate a left-system reference into the pivot system",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := buildTable(args[0])
		if err != nil {
			return err
		}
		out, err := tbl.MapToString(args[1])
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var unmapCmd = &cobra.Command{
	Use:   "unmap <left> <reference>",
	Short: "Translate a pivot-system reference back into a left system",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := buildTable(args[0])
		if err != nil {
			return err
		}
		out, err := tbl.UnmapToString(args[1])
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}
