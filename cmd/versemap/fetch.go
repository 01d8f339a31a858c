package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/focuswithjustin/versemap/pkg/mapfetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <left>",
	Short: "Download a mapping table file over FTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := findTableSource(cfg, args[0])
		if err != nil {
			return err
		}

		client := mapfetch.NewClient(time.Duration(cfg.FTP.TimeoutSec) * time.Second)
		ctx := context.Background()
		if err := client.Connect(ctx, cfg.FTP.Host); err != nil {
			return err
		}
		defer client.Close()

		data, err := client.Fetch(ctx, cfg.FTP.RemotePath)
		if err != nil {
			return err
		}

		if err := os.WriteFile(ts.Path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", ts.Path, err)
		}
		fmt.Printf("fetched %d bytes into %s\n", len(data), ts.Path)
		return nil
	},
}
