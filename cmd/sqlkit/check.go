package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/migrate"
)

// newCheckCmd builds the "check" subcommand, rendering migrate.Check's
// findings as a table the way leapstack-labs-leapsql's query_render.go
// renders query results, and exiting non-zero on any error-severity
// finding (spec.md §4.8).
func newCheckCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the on-disk journal, snapshots, and SQL files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Root().PersistentFlags(), *configPath)
			if err != nil {
				return err
			}
			d := dialect.Name(cfg.Dialect)
			if _, err := dialect.For(d); err != nil {
				return err
			}

			result, checkErr := migrate.Check(cfg.Out, d)

			if len(result.Findings) == 0 {
				cmd.Println("no findings")
			} else {
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Idx", "Tag", "Severity", "Message"})
				for _, f := range result.Findings {
					t.AppendRow(table.Row{f.Idx, f.Tag, f.Severity, f.Message})
				}
				t.Render()
			}

			if result.HasErrors() {
				os.Exit(1)
			}
			return checkErr
		},
	}

	return cmd
}
