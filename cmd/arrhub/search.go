package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhub/internal/format"
	"github.com/vmunix/arrhub/internal/media"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search a backend library or its metadata provider",
	Long: `Search the configured backend.

With a term, queries the backend's lookup endpoint (results not yet in the
library show an id of 0). Without one, lists the local library.

Examples:
  arrhub search "the matrix" --catalog movie
  arrhub search --catalog series --year 2010 --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("catalog", "c", "movie", "Catalog to search (movie, series)")
	searchCmd.Flags().Int("year", 0, "Only results from this year")
	searchCmd.Flags().IntP("limit", "n", 0, "Cap the number of results")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	catalogName, _ := cmd.Flags().GetString("catalog")
	svc, err := a.service(catalogName)
	if err != nil {
		return err
	}

	filters := media.Filters{}
	if year, _ := cmd.Flags().GetInt("year"); year > 0 {
		filters.Year = &year
	}
	filters.Limit, _ = cmd.Flags().GetInt("limit")

	ctx := cmd.Context()
	recs, err := func() ([]media.ReducedRecord, error) {
		if len(args) > 0 {
			raw, err := svc.Lookup(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return media.ReduceAll(svc.Catalog(), raw), nil
		}
		raw, err := svc.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return media.ReduceAll(svc.Catalog(), raw), nil
	}()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	results := filters.Apply(recs)

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results")
		return nil
	}

	fmt.Printf("Results (%d):\n\n", len(results))
	fmt.Printf("  %-7s %-44s %-6s %-10s %s\n", "ID", "TITLE", "YEAR", "SIZE", "STATUS")
	fmt.Println("  " + strings.Repeat("-", 76))
	for _, rec := range results {
		id := "-"
		if rec.ID != 0 {
			id = fmt.Sprintf("%d", rec.ID)
		}
		fmt.Printf("  %-7s %-44s %-6d %-10s %s\n",
			id, truncate(rec.Title, 44), rec.Year, format.Bytes(rec.SizeBytes), rec.Status)
	}
	return nil
}
