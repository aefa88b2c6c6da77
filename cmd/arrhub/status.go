package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/format"
	"github.com/vmunix/arrhub/internal/queue"
	"github.com/vmunix/arrhub/internal/resolver"
	"github.com/vmunix/arrhub/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Resolve a media item and report its library/queue state",
	Long: `Resolve a media item by internal id, external catalog id, or title,
and report one consistent snapshot: on disk, in the transfer queue, or
neither. An item already on disk is never looked up in the queue.

Examples:
  arrhub status --catalog movie --title "the matrix" --year 1999
  arrhub status --catalog series --id 42
  arrhub status --catalog movie --external-id 603`,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringP("catalog", "c", "movie", "Catalog to query (movie, series)")
	statusCmd.Flags().Int64("id", 0, "Internal backend id")
	statusCmd.Flags().Int64("external-id", 0, "External catalog id (TMDB/TVDB)")
	statusCmd.Flags().StringP("title", "t", "", "Title to resolve fuzzily")
	statusCmd.Flags().Int("year", 0, "Year, sharpens title resolution")
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	catalogName, _ := cmd.Flags().GetString("catalog")
	svc, err := a.service(catalogName)
	if err != nil {
		return err
	}

	identity := resolver.Identity{}
	if id, _ := cmd.Flags().GetInt64("id"); id > 0 {
		identity.ID = &id
	}
	if external, _ := cmd.Flags().GetInt64("external-id"); external > 0 {
		identity.ExternalID = &external
	}
	identity.Title, _ = cmd.Flags().GetString("title")
	if year, _ := cmd.Flags().GetInt("year"); year > 0 {
		identity.Year = &year
	}

	res := resolver.New(svc, quietLogger())
	reporter := status.NewReporter(res, queue.New(svc, quietLogger()))

	snap, err := reporter.Report(cmd.Context(), identity)
	if errors.Is(err, arr.ErrNotFound) {
		return reportNotFound(cmd, res, identity)
	}
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(snap)
		return nil
	}
	printSnapshot(snap)
	return nil
}

// reportNotFound prints near-miss suggestions for title queries.
func reportNotFound(cmd *cobra.Command, res *resolver.Resolver, identity resolver.Identity) error {
	if identity.Title == "" {
		return fmt.Errorf("no matching record found")
	}
	suggestions, err := res.Suggest(cmd.Context(), identity.Title, 5)
	if err != nil || len(suggestions) == 0 {
		return fmt.Errorf("no matching record found for %q", identity.Title)
	}
	fmt.Printf("No library match for %q. Close lookups:\n\n", identity.Title)
	for _, s := range suggestions {
		fmt.Printf("  %s (%d)\n", s.Title, s.Year)
	}
	return nil
}

func printSnapshot(s *status.Snapshot) {
	fmt.Printf("%s (%d)\n", s.Title, s.Year)
	fmt.Printf("  Status:     %s\n", s.Status)
	fmt.Printf("  Monitored:  %v\n", s.Monitored)

	switch {
	case s.OnDisk:
		fmt.Println("  On disk:    yes")
		fmt.Printf("  Size:       %s\n", format.Bytes(s.SizeBytes))
		fmt.Printf("  Added:      %s\n", format.Ago(s.Added))
		if s.Rating > 0 {
			fmt.Printf("  Rating:     %.1f\n", s.Rating)
		}
		for _, season := range s.Seasons {
			fmt.Printf("  Season %2d:  %d/%d episodes, %s\n",
				season.SeasonNumber, season.EpisodeFileCount, season.EpisodeCount,
				format.Bytes(season.SizeOnDisk))
		}
	case s.InQueue:
		fmt.Println("  On disk:    no")
		fmt.Printf("  Queue:      %s (%s)\n", s.Queue.Status, s.Queue.DownloadProgress)
		fmt.Printf("  Remaining:  %s, %s left\n",
			format.BytesFloat(s.Queue.SizeLeft), format.TimeLeft(s.Queue.TimeLeft))
	default:
		fmt.Println("  On disk:    no")
		fmt.Println("  Queue:      not queued")
	}
}
