package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
	ucli "github.com/urfave/cli/v2"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// ServiceLoader opens the dashboard service for one command run. The returned
// func releases whatever the service holds.
type ServiceLoader func(ctx context.Context) (*usecase.DashboardService, func() error, error)

// NewApp builds the rankingctl command tree. Output goes to out.
func NewApp(version string, load ServiceLoader, out io.Writer) *ucli.App {
	r := &runner{load: load, out: out}
	return &ucli.App{
		Name:    "rankingctl",
		Usage:   "inspect FKL player rankings from the terminal",
		Version: version,
		Writer:  out,
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   outputTable,
				Usage:   "output format: table or json",
			},
		},
		Commands: []*ucli.Command{
			rankingCommand(r),
			historyCommand(r),
			teamsCommand(r),
			metricsCommand(r),
		},
	}
}

type runner struct {
	load ServiceLoader
	out  io.Writer
}

func (r *runner) withService(c *ucli.Context, fn func(*usecase.DashboardService) error) (err error) {
	service, closeFn, err := r.load(c.Context)
	if err != nil {
		return fmt.Errorf("open dashboard: %w", err)
	}
	defer func() {
		if closeErr := closeFn(); closeErr != nil && err == nil {
			err = fmt.Errorf("close dashboard: %w", closeErr)
		}
	}()
	return fn(service)
}

func outputFormat(c *ucli.Context) (string, error) {
	switch v := c.String("output"); v {
	case outputTable, outputJSON:
		return v, nil
	default:
		return "", fmt.Errorf("%w: output must be %s or %s, got %q", usecase.ErrInvalidInput, outputTable, outputJSON, v)
	}
}
