package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/queue"
)

var wantedCmd = &cobra.Command{
	Use:   "wanted",
	Short: "List monitored items that are still missing",
	Args:  cobra.NoArgs,
	RunE:  runWantedCmd,
}

func init() {
	rootCmd.AddCommand(wantedCmd)
	wantedCmd.Flags().StringP("catalog", "c", "movie", "Catalog to list (movie, series)")
	wantedCmd.Flags().Int("page", 1, "Page of results")
}

func runWantedCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	catalogName, _ := cmd.Flags().GetString("catalog")
	svc, err := a.service(catalogName)
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	wanted, err := svc.Wanted(cmd.Context(), page, queue.DefaultPageSize)
	if err != nil {
		return fmt.Errorf("wanted fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(wanted)
		return nil
	}

	if len(wanted.Records) == 0 {
		fmt.Println("Nothing missing")
		return nil
	}

	fmt.Printf("Missing (%d of %d):\n\n", len(wanted.Records), wanted.TotalRecords)
	for _, item := range wanted.Records {
		if svc.Catalog() == arr.CatalogSeries {
			fmt.Printf("  %s S%02dE%02d %s\n",
				truncate(item.SeriesTitle, 40), item.SeasonNumber, item.EpisodeNumber,
				truncate(item.Title, 30))
			continue
		}
		fmt.Printf("  %s (%d)\n", truncate(item.Title, 50), item.Year)
	}
	return nil
}
