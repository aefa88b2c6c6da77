package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhub/internal/acquire"
	"github.com/vmunix/arrhub/internal/history"
)

var addCmd = &cobra.Command{
	Use:   "add <external-id>",
	Short: "Request acquisition of a media item",
	Long: `Request acquisition by external catalog id (TMDB for movies, TVDB
for series). If the item is already in the library - on disk or still
downloading - no duplicate command is issued.

Examples:
  arrhub add 603 --catalog movie
  arrhub add 81189 --catalog series`,
	Args: cobra.ExactArgs(1),
	RunE: runAddCmd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("catalog", "c", "movie", "Catalog to add to (movie, series)")
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	externalID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || externalID <= 0 {
		return fmt.Errorf("invalid external id: %s", args[0])
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	catalogName, _ := cmd.Flags().GetString("catalog")
	svc, err := a.service(catalogName)
	if err != nil {
		return err
	}

	coordinator := acquire.New(svc, a.defaults(svc.Catalog()), quietLogger())
	result, err := coordinator.Request(cmd.Context(), externalID)

	journalAdd(a, svc.Catalog().String(), args[0], result, err)
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	title := ""
	if result.Record != nil {
		title = fmt.Sprintf(" %q", result.Record.Title)
	}
	switch {
	case result.AlreadyPresent && result.HasFile:
		fmt.Printf("Already on disk:%s, nothing to do\n", title)
	case result.AlreadyPresent:
		fmt.Printf("Already in library:%s, acquisition previously requested\n", title)
	default:
		fmt.Printf("Requested:%s, backend accepted the add\n", title)
	}
	return nil
}

// journalAdd records the outcome in the local request journal. Journal
// problems are not the user's problem; they are ignored here.
func journalAdd(a *app, catalog, query string, result *acquire.Result, reqErr error) {
	journal, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return
	}
	defer func() { _ = journal.Close() }()

	outcome := "created"
	switch {
	case reqErr != nil:
		outcome = "error: " + reqErr.Error()
	case result.AlreadyPresent && result.HasFile:
		outcome = "already_on_disk"
	case result.AlreadyPresent:
		outcome = "already_queued"
	}
	_ = journal.Record(history.Entry{
		Operation: "add",
		Catalog:   catalog,
		Query:     query,
		Outcome:   outcome,
	})
}
