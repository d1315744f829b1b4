package csvdir

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

const utf8BOM = "\ufeff"

const defaultWorkers = 4

// RoundStatSource reads one CSV export per team from fsys. The file name without
// its .csv extension is the team; teams are returned in file name order.
type RoundStatSource struct {
	fsys    fs.FS
	workers int
}

// NewRoundStatSource parses up to workers files at once; workers <= 0 uses the default.
func NewRoundStatSource(fsys fs.FS, workers int) *RoundStatSource {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &RoundStatSource{fsys: fsys, workers: workers}
}

func (r *RoundStatSource) FetchTeams(ctx context.Context) ([]roundstat.TeamTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, crerr.Wrap(err, "list csv exports")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return []roundstat.TeamTable{}, nil
	}

	pool, err := ants.NewPool(min(r.workers, len(names)))
	if err != nil {
		return nil, fmt.Errorf("create csv worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]roundstat.TeamTable, len(names))
	errs := make([]error, len(names))

	var workers sync.WaitGroup
	for i, name := range names {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			team := strings.TrimSuffix(name, path.Ext(name))
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			rows, err := r.readTable(name)
			if err != nil {
				errs[i] = crerr.Wrapf(err, "read team %q", team)
				return
			}
			out[i] = roundstat.TeamTable{Team: team, Rows: rows}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit csv parse task: %w", err)
		}
	}
	workers.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoundStatSource) readTable(name string) ([]roundstat.RawRecord, error) {
	f, err := r.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}

	grid := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		grid[i] = row
	}
	return roundstat.FromGrid(grid), nil
}
