package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"swiss-app/internal/config"
	"swiss-app/internal/store"
	"swiss-app/internal/swiss"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "swissctl",
		Usage: "manage a Swiss-system tournament from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "db", Usage: "SQLite database path (overrides config)"},
			&cli.StringFlag{Name: "postgres-dsn", Usage: "Postgres DSN (overrides config)"},
		},
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "players",
				Usage: "player registration",
				Subcommands: []*cli.Command{
					{
						Name:      "register",
						Usage:     "register a player",
						ArgsUsage: "NAME",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							if c.NArg() != 1 {
								return cli.Exit("exactly one player name is required", 2)
							}
							p, err := s.RegisterPlayer(c.Context, c.Args().First())
							if err != nil {
								return err
							}
							fmt.Fprintf(c.App.Writer, "registered %s as #%d\n", p.Name, p.ID)
							return nil
						}),
					},
					{
						Name:  "list",
						Usage: "list players in registration order",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							players, err := s.ListPlayers(c.Context)
							if err != nil {
								return err
							}
							_, err = io.WriteString(c.App.Writer, formatPlayers(players))
							return err
						}),
					},
					{
						Name:  "count",
						Usage: "print the number of registered players",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							n, err := s.CountPlayers(c.Context)
							if err != nil {
								return err
							}
							fmt.Fprintln(c.App.Writer, n)
							return nil
						}),
					},
					{
						Name:  "reset",
						Usage: "delete every player and match",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							if err := s.DeletePlayers(c.Context); err != nil {
								return err
							}
							fmt.Fprintln(c.App.Writer, "all players deleted")
							return nil
						}),
					},
				},
			},
			{
				Name:  "matches",
				Usage: "match results",
				Subcommands: []*cli.Command{
					{
						Name:      "report",
						Usage:     "record that WINNER beat LOSER",
						ArgsUsage: "WINNER_ID LOSER_ID",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							if c.NArg() != 2 {
								return cli.Exit("winner and loser ids are required", 2)
							}
							winner, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
							if err != nil {
								return cli.Exit(fmt.Sprintf("invalid winner id %q", c.Args().Get(0)), 2)
							}
							loser, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
							if err != nil {
								return cli.Exit(fmt.Sprintf("invalid loser id %q", c.Args().Get(1)), 2)
							}
							m, err := s.RecordMatch(c.Context, winner, loser)
							if err != nil {
								return err
							}
							fmt.Fprintf(c.App.Writer, "recorded match %s\n", m.ID)
							return nil
						}),
					},
					{
						Name:  "list",
						Usage: "list recorded matches",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							matches, err := s.ListMatches(c.Context)
							if err != nil {
								return err
							}
							for _, m := range matches {
								fmt.Fprintf(c.App.Writer, "%s  %d beat %d\n", m.ID, m.WinnerID, m.LoserID)
							}
							return nil
						}),
					},
					{
						Name:  "reset",
						Usage: "delete every match, keeping players",
						Action: withStore(func(c *cli.Context, s store.Store) error {
							if err := s.DeleteMatches(c.Context); err != nil {
								return err
							}
							fmt.Fprintln(c.App.Writer, "all matches deleted")
							return nil
						}),
					},
				},
			},
			{
				Name:  "standings",
				Usage: "print current standings",
				Action: withStore(func(c *cli.Context, s store.Store) error {
					standings, err := swiss.NewService(s, nil).Standings(c.Context)
					if err != nil {
						return err
					}
					_, err = io.WriteString(c.App.Writer, formatStandings(standings))
					return err
				}),
			},
			{
				Name:  "pairings",
				Usage: "print pairings for the next round",
				Action: withStore(func(c *cli.Context, s store.Store) error {
					pairings, err := swiss.NewService(s, nil).Pairings(c.Context)
					if err != nil {
						return err
					}
					_, err = io.WriteString(c.App.Writer, formatPairings(pairings))
					return err
				}),
			},
		},
	}
}

// withStore opens the configured store for the duration of one command.
func withStore(fn func(c *cli.Context, s store.Store) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}
		opts := store.Options{
			PostgresDSN:           cfg.Postgres.DSN,
			PostgresMigrationsDir: cfg.Postgres.MigrationsDir,
			SQLitePath:            cfg.SQLite.Path,
			SQLiteMigrationsDir:   cfg.SQLite.MigrationsDir,
		}
		if v := c.String("postgres-dsn"); v != "" {
			opts.PostgresDSN = v
		}
		if v := c.String("db"); v != "" {
			opts.PostgresDSN = ""
			opts.SQLitePath = v
		}
		s, backend, err := store.Open(opts)
		if err != nil {
			return err
		}
		defer s.Close()
		if backend == "memory" {
			fmt.Fprintln(c.App.ErrWriter, "warning: no database configured, using a throwaway in-memory store")
		}
		return fn(c, s)
	}
}
