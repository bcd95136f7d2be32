package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/migrate"
)

// newGenerateCmd builds the "generate" subcommand, calling straight into
// migrate.Generate the way SPEC_FULL.md §6 describes: this binary exists
// to exercise the config/CLI ambient stack end to end, not to reimplement
// generate's logic.
func newGenerateCmd(configPath *string) *cobra.Command {
	var name string
	var custom bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a migration SQL file from the demo schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Root().PersistentFlags(), *configPath)
			if err != nil {
				return err
			}
			d := dialect.Name(cfg.Dialect)
			if _, err := dialect.For(d); err != nil {
				return err
			}

			res, err := migrate.Generate(cfg.Out, demoSchema(d), migrate.GenerateOptions{
				Name:   name,
				Custom: custom,
				Now:    func() int64 { return time.Now().UnixMilli() },
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d statement(s))\n", res.SQLPath, len(res.Statements))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "migration name (default: a random journal name)")
	cmd.Flags().BoolVar(&custom, "custom", false, "scaffold an empty SQL file for a hand-written migration")

	return cmd
}
