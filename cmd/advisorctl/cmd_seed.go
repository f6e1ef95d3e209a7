package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-advisor/internal/seed"
)

func newSeedCommand(g *globalFlags) *cobra.Command {
	var opts seed.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with a synthetic dataset",
		Long: `Load the default course catalog (when the database has none) and generate
students with grade histories, preferences and disability accommodations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Students < 0 {
				return fmt.Errorf("--students must not be negative")
			}
			conn, store, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			sum, err := seed.New(store, opts).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("seeding: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().IntVar(&opts.Students, "students", 200, "Number of generated students")
	cmd.Flags().IntVar(&opts.MinGrades, "min-grades", 5, "Minimum grades per student")
	cmd.Flags().IntVar(&opts.MaxGrades, "max-grades", 15, "Maximum grades per student")
	cmd.Flags().BoolVar(&opts.Fixtures, "fixtures", false, "Also insert the five named test students")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed (0 = time based)")
	return cmd
}
