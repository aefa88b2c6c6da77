package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/format"
	"github.com/vmunix/arrhub/internal/status"
)

var systemCmd = &cobra.Command{
	Use:   "system [movie|series|both]",
	Short: "Backend health, version and disk space",
	Long: `Report version, disk space and health checks for one backend or
both. The three reads per backend are issued concurrently.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"movie", "series", "both"},
	RunE:      runSystemCmd,
}

func init() {
	rootCmd.AddCommand(systemCmd)
}

func runSystemCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	which := "both"
	if len(args) > 0 {
		which = args[0]
	}

	var services []arr.Service
	if which == "both" {
		if a.movies != nil {
			services = append(services, a.movies)
		}
		if a.series != nil {
			services = append(services, a.series)
		}
	} else {
		svc, err := a.service(which)
		if err != nil {
			return err
		}
		services = append(services, svc)
	}

	reports := status.FetchSystems(cmd.Context(), services)

	if jsonOutput {
		printJSON(reports)
		return nil
	}

	for i := range reports {
		if i > 0 {
			fmt.Println()
		}
		printSystemReport(&reports[i])
	}
	return nil
}

func printSystemReport(r *status.SystemReport) {
	if r.Error != "" {
		fmt.Printf("%s: UNREACHABLE (%s)\n", r.Backend, r.Error)
		return
	}

	fmt.Printf("%s: %s %s\n", r.Backend, r.Status.AppName, r.Status.Version)
	for _, disk := range r.DiskSpace {
		fmt.Printf("  Disk %-20s %s free of %s\n",
			disk.Path, format.Bytes(disk.FreeSpace), format.Bytes(disk.TotalSpace))
	}
	if len(r.Health) == 0 {
		fmt.Println("  Health: ok")
		return
	}
	for _, check := range r.Health {
		fmt.Printf("  Health [%s]: %s\n", check.Type, check.Message)
	}
}
