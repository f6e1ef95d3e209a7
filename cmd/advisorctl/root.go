package main

import (
	"context"
	"database/sql"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/config"
	"github.com/mind-engage/mindengage-advisor/internal/db"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
)

var version = "dev"

type globalFlags struct {
	driver   string
	dsn      string
	logLevel string
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "advisorctl",
		Short: "Operate the course advisor database",
		Long: `advisorctl seeds the advisor database with a synthetic dataset, runs
predictions and recommendations for a student, and manages local accounts.

Database settings default to the same ADVISOR_* variables the gateway reads.`,
		Version:      version,
		SilenceUsage: true,
	}

	cfg := config.Defaults()
	if loaded, err := config.Load(); err == nil {
		cfg = loaded
	}
	cmd.PersistentFlags().StringVar(&g.driver, "db-driver", cfg.DBDriver, "Database driver (sqlite|postgres)")
	cmd.PersistentFlags().StringVar(&g.dsn, "db-dsn", cfg.DBDSN, "Database DSN")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{Level: g.logLevel, Format: "console", Output: cmd.ErrOrStderr()})
	}

	cmd.AddCommand(newSeedCommand(g))
	cmd.AddCommand(newPredictCommand(g))
	cmd.AddCommand(newRecommendCommand(g))
	cmd.AddCommand(newHashPasswordCommand())
	cmd.AddCommand(newUserCommand(g))
	return cmd
}

func (g *globalFlags) open(ctx context.Context) (*sql.DB, academic.Store, error) {
	conn, err := db.Open(ctx, db.Driver(g.driver), g.dsn)
	if err != nil {
		return nil, nil, err
	}
	return conn, academic.NewSQLStore(conn, g.driver), nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
