package cli

import (
	"fmt"
	"os"

	"apidocs/internal/exporter/word"

	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [path]",
		Short: "Write the built-in Word template for customization",
		Long: "Write the built-in .docx template. Edit it in Word, keep the {{Title}}, {{Date}}, " +
			"{{TotalSchemas}} and {{Content}} placeholders, and point output.word_template at it.",
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "template.docx"
			if len(args) == 1 {
				path = args[0]
			}

			data, err := word.Template()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", path)
			return nil
		},
	}
}
