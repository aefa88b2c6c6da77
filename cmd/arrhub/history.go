package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhub/internal/format"
	"github.com/vmunix/arrhub/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent acquisition requests and their outcomes",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	journal, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = journal.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := journal.List(limit)
	if err != nil {
		return fmt.Errorf("history fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(entries)
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No history")
		return nil
	}

	fmt.Printf("  %-14s %-8s %-12s %-20s %s\n", "WHEN", "CATALOG", "OP", "QUERY", "OUTCOME")
	fmt.Println("  " + strings.Repeat("-", 72))
	for _, e := range entries {
		fmt.Printf("  %-14s %-8s %-12s %-20s %s\n",
			format.Ago(e.RequestedAt), e.Catalog, e.Operation,
			truncate(e.Query, 20), e.Outcome)
	}
	return nil
}
