package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func writeJSON(out io.Writer, v any) error {
	enc := sonic.ConfigDefault.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRanking(out io.Writer, view ranking.View) error {
	tw := newTabWriter(out)
	header := []string{"#", roundstat.FieldName, roundstat.FieldTeam, roundstat.FieldPosition}
	for _, col := range view.Columns {
		header = append(header, col.Field)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range view.Rows {
		cells := []string{strconv.Itoa(row.Rank), row.Name, row.Team, row.Position}
		for _, v := range row.Values {
			cells = append(cells, strconv.Itoa(v))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(view.Rows) == 0 {
		_, err := fmt.Fprintln(out, "해당 팀의 기록이 없습니다.")
		return err
	}
	return nil
}

func writeHistory(out io.Writer, player string, rows []roundstat.HistoryRow) error {
	if _, err := fmt.Fprintf(out, "%s 경기별 히스토리\n", player); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "기록이 없습니다.")
		return err
	}

	metrics := roundstat.Metrics()
	tw := newTabWriter(out)
	header := []string{roundstat.FieldRound, roundstat.FieldOpponent, roundstat.FieldTeam}
	for _, m := range metrics {
		header = append(header, m.Field)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		cells := []string{row.Round, row.Opponent, row.Team}
		for _, m := range metrics {
			cells = append(cells, strconv.Itoa(row.Value(m.Key)))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeMetrics(out io.Writer, metrics []roundstat.MetricInfo) error {
	tw := newTabWriter(out)
	fmt.Fprintln(tw, "key\tfield")
	for _, m := range metrics {
		fmt.Fprintf(tw, "%s\t%s\n", m.Key, m.Field)
	}
	return tw.Flush()
}
