package cli

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
	ucli "github.com/urfave/cli/v2"
)

func rankingCommand(r *runner) *ucli.Command {
	return &ucli.Command{
		Name:  "ranking",
		Usage: "print the aggregated player ranking",
		Flags: []ucli.Flag{
			&ucli.StringFlag{Name: "team", Aliases: []string{"t"}, Value: ranking.AllTeams, Usage: "team filter, All or 전체 for every team"},
			&ucli.StringFlag{Name: "metric", Aliases: []string{"m"}, Usage: "sort metric key, default points"},
			&ucli.StringFlag{Name: "layout", Aliases: []string{"l"}, Usage: "full or compact"},
			&ucli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "keep the top n rows, 0 for all"},
		},
		Action: func(c *ucli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}
			return r.withService(c, func(service *usecase.DashboardService) error {
				view, err := service.Ranking(c.Context, usecase.RankingQuery{
					Team:   c.String("team"),
					Metric: c.String("metric"),
					Layout: c.String("layout"),
					Limit:  c.Int("limit"),
				})
				if err != nil {
					return err
				}
				if format == outputJSON {
					return writeJSON(r.out, view)
				}
				return writeRanking(r.out, view)
			})
		},
	}
}

func historyCommand(r *runner) *ucli.Command {
	return &ucli.Command{
		Name:      "history",
		Usage:     "print every round of one player",
		ArgsUsage: "[player]",
		Flags: []ucli.Flag{
			&ucli.StringFlag{Name: "player", Aliases: []string{"p"}, Usage: "player name"},
		},
		Action: func(c *ucli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}
			player := c.String("player")
			if strings.TrimSpace(player) == "" {
				player = c.Args().First()
			}
			return r.withService(c, func(service *usecase.DashboardService) error {
				rows, err := service.History(c.Context, player)
				if err != nil {
					return err
				}
				if format == outputJSON {
					return writeJSON(r.out, map[string]any{"player": player, "rounds": rows})
				}
				return writeHistory(r.out, player, rows)
			})
		},
	}
}

func teamsCommand(r *runner) *ucli.Command {
	return &ucli.Command{
		Name:  "teams",
		Usage: "list team filter options",
		Action: func(c *ucli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}
			return r.withService(c, func(service *usecase.DashboardService) error {
				teams, err := service.Teams(c.Context)
				if err != nil {
					return err
				}
				if format == outputJSON {
					return writeJSON(r.out, teams)
				}
				for _, team := range teams {
					if _, err := fmt.Fprintln(r.out, team); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func metricsCommand(r *runner) *ucli.Command {
	return &ucli.Command{
		Name:  "metrics",
		Usage: "list sortable metrics",
		Action: func(c *ucli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}
			return r.withService(c, func(service *usecase.DashboardService) error {
				metrics := service.Metrics()
				if format == outputJSON {
					return writeJSON(r.out, metrics)
				}
				return writeMetrics(r.out, metrics)
			})
		},
	}
}
