package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the openapi-apiclient CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "openapi-apiclient",
		Short:         "Generate TypeScript API clients from Swagger/OpenAPI documents",
		Long:          "openapi-apiclient turns a Swagger/OpenAPI document into a typed TypeScript client: a generic dispatch helper, one wrapper function per operation, and the data-shape declarations.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Convert Cobra flag errors (like unknown flags) into friendly usage errors
	// that also show the command's help text.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (YAML or JSON)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging output")

	g := newGenerateCmd()
	g.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})
	cmd.AddCommand(g)

	i := newInitCmd()
	i.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})
	cmd.AddCommand(i)

	return cmd
}
