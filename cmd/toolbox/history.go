package main

import (
	"context"
	"fmt"

	"github.com/RobinCoderZhao/toolbox-suite/internal/toolbox/history"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var (
		tool  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent tool invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if !cmd.Flags().Changed("limit") {
				limit = cfg.History.Limit
			}
			entries, err := store.Recent(context.Background(), tool, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no history")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %-8s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Tool, e.Summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Filter by tool name")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if err := store.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("history cleared")
			return nil
		},
	})
	return cmd
}
