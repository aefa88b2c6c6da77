package status

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrhub/internal/arr"
)

// SystemReport is one backend's health view. The three reads have no data
// dependency, so they are issued concurrently and joined.
type SystemReport struct {
	Backend   string            `json:"backend"`
	Status    *arr.SystemStatus `json:"status,omitempty"`
	DiskSpace []arr.DiskSpace   `json:"diskSpace,omitempty"`
	Health    []arr.HealthCheck `json:"health"`
	Error     string            `json:"error,omitempty"`
}

// FetchSystem gathers status, disk space and health for one backend. The
// wall clock cost is the slowest of the three calls.
func FetchSystem(ctx context.Context, svc arr.Service) (*SystemReport, error) {
	report := &SystemReport{Backend: svc.Catalog().String()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report.Status, err = svc.SystemStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.DiskSpace, err = svc.DiskSpace(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.Health, err = svc.Health(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// FetchSystems reports on several backends concurrently. A failing backend
// yields a report with Error set instead of failing the others.
func FetchSystems(ctx context.Context, services []arr.Service) []SystemReport {
	reports := make([]SystemReport, len(services))

	g, ctx := errgroup.WithContext(ctx)
	for i, svc := range services {
		g.Go(func() error {
			report, err := FetchSystem(ctx, svc)
			if err != nil {
				reports[i] = SystemReport{Backend: svc.Catalog().String(), Error: err.Error()}
				return nil
			}
			reports[i] = *report
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; per-backend errors land in the report
	return reports
}
