package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	appName    = "apidocs"
	appVersion = "1.0.0"
	appDesc    = "Render API schema descriptions into browsable documentation"
)

// Execute runs the apidocs CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         appDesc,
		Long:          "apidocs turns a declarative description of HTTP API schemas and custom types into a navigable documentation page, with optional Excel, Word, OpenAPI and JSON outputs.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetFlagErrorFunc(flagError)

	cmd.PersistentFlags().StringP("config", "c", "config.yaml", "Path to configuration file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging (DEBUG level)")

	for _, sub := range []*cobra.Command{newRenderCmd(), newTemplateCmd(), newVersionCmd()} {
		sub.SetFlagErrorFunc(flagError)
		cmd.AddCommand(sub)
	}

	return cmd
}

// flagError turns cobra flag errors (like unknown flags) into usage errors
// that also show the command's help text.
func flagError(c *cobra.Command, err error) error {
	return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
}

// usageArgs reports positional argument mistakes as usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return newUsageError(fmt.Sprintf("%v\n\n%s", err, cmd.UsageString()))
		}
		return nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n%s\n", appName, appVersion, appDesc)
			return nil
		},
	}
}
