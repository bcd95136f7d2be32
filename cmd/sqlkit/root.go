package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the demo CLI's root command: persistent --config/
// --dialect/--out flags shared by generate and check, grounded on
// leapstack-labs-leapsql's cobra root-command layout (internal/cli/root.go).
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "sqlkit",
		Short: "Demo CLI exercising the migrate generate/check lifecycle",
		Long: "sqlkit is a small demonstration binary wiring the sqlkit-go/sqlkit\n" +
			"migrate package into a cobra command line, configured via koanf\n" +
			"(defaults, optional sqlkit.yaml, SQLKIT_ env vars, flags).",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional sqlkit.yaml")
	root.PersistentFlags().String("dialect", "", "target SQL dialect (sqlite, postgresql, mysql)")
	root.PersistentFlags().String("out", "", "migrations output directory")

	root.AddCommand(newGenerateCmd(&configPath))
	root.AddCommand(newCheckCmd(&configPath))

	return root
}

// Execute runs the demo CLI and returns any error it raised.
func Execute() error {
	return newRootCmd().Execute()
}
