package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/exporter"
	"apidocs/internal/loader"
	"apidocs/internal/logger"
	"apidocs/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const logFileName = "apidocs.log"

type renderOptions struct {
	verbose    bool
	noProgress bool
	out        io.Writer
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the documentation data model into the configured formats",
		Example: strings.TrimSpace(`  apidocs render --input docs.json --output ./site
  apidocs -c config.yaml render --format html,openapi --lang zh`),
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveRenderConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			verbose, _ := flags.GetBool("verbose")
			noProgress, _ := flags.GetBool("no-progress")

			return runRender(cmd.Context(), cfg, renderOptions{
				verbose:    verbose,
				noProgress: noProgress,
				out:        cmd.OutOrStdout(),
			})
		},
	}

	flags := cmd.Flags()
	flags.String("input", "", "Override input.path: a data file or a directory of data files")
	flags.StringSlice("encoding", nil, "Override input.encoding hints (e.g. utf-8,gb18030)")
	flags.String("output", "", "Override output.dir")
	flags.StringSlice("format", nil, "Override output.formats (html,json,excel,word,openapi)")
	flags.String("lang", "", "Override render.language (en|zh)")
	flags.String("title", "", "Override render.title")
	flags.String("word-template", "", "Override output.word_template")
	flags.Bool("allow-duplicate-ids", false, "Keep rendering when two schemas share an id")
	flags.Bool("no-highlight", false, "Disable the syntax highlighting pass")
	flags.Bool("no-progress", false, "Hide progress bars")

	return cmd
}

// resolveRenderConfig merges defaults, the config file and flag overrides,
// then validates the result. Every failure is a usage error.
func resolveRenderConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(strings.TrimSpace(configPath))
	if err != nil {
		return nil, newUsageError(err.Error())
	}

	if err := applyRenderFlagOverrides(cmd.Flags(), cfg); err != nil {
		return nil, err
	}

	if err := cfg.NormalizePaths(); err != nil {
		return nil, newUsageError(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, newUsageError(err.Error())
	}

	return cfg, nil
}

func applyRenderFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) error {
	stringFlags := []struct {
		name   string
		target *string
	}{
		{"input", &cfg.Input.Path},
		{"output", &cfg.Output.Dir},
		{"lang", &cfg.Render.Language},
		{"title", &cfg.Render.Title},
		{"word-template", &cfg.Output.WordTemplate},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		value, err := flags.GetString(f.name)
		if err != nil {
			return err
		}
		*f.target = strings.TrimSpace(value)
	}

	sliceFlags := []struct {
		name   string
		target *[]string
	}{
		{"encoding", &cfg.Input.Encoding},
		{"format", &cfg.Output.Formats},
	}
	for _, f := range sliceFlags {
		if !flags.Changed(f.name) {
			continue
		}
		value, err := flags.GetStringSlice(f.name)
		if err != nil {
			return err
		}
		*f.target = sanitizeList(value)
	}

	if flags.Changed("allow-duplicate-ids") {
		value, err := flags.GetBool("allow-duplicate-ids")
		if err != nil {
			return err
		}
		cfg.Render.AllowDuplicateIDs = value
	}
	if flags.Changed("no-highlight") {
		value, err := flags.GetBool("no-highlight")
		if err != nil {
			return err
		}
		cfg.Render.Highlight = !value
	}

	return nil
}

func runRender(ctx context.Context, cfg *config.Config, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.out == nil {
		opts.out = io.Discard
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}

	printBanner(opts.out)

	logPath := filepath.Join(cfg.Output.Dir, logFileName)
	if err := logger.Init(opts.out, logPath, opts.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	if logger.IsVerbose() {
		cfg.Print()
	}

	pipeline := ui.NewRenderPipeline(opts.out, opts.noProgress)

	// --- Phase 1: Loading ---
	logger.Info("Phase 1: Loading data model from %s", cfg.Input.Path)
	loadBar := pipeline.NextPhase(1)

	docs, err := loader.LoadPath(cfg.Input.Path, cfg.Input.Encoding)
	if err != nil {
		logger.Error("Loading failed: %v", err)
		return err
	}
	loadBar.Increment()
	loadBar.Finish()

	if err := ctx.Err(); err != nil {
		return err
	}

	// --- Phase 2: Assembling ---
	logger.Info("Phase 2: Assembling %d schemas, %d types...", len(docs.Schemas), docs.Types.Len())
	assembleBar := pipeline.NextPhase(max(len(docs.Schemas), 1))
	assembleBar.Describe(fmt.Sprintf("%d schemas", len(docs.Schemas)))

	assembler := docgen.NewAssembler(docgen.NewTypeResolver(docs.Types), docgen.Options{
		Title:             cfg.Render.Title,
		Language:          cfg.Render.Language,
		AllowDuplicateIDs: cfg.Render.AllowDuplicateIDs,
		Highlight:         cfg.Render.Highlight,
	})
	doc, err := assembler.Assemble(docs)
	if err != nil {
		logger.Error("Assembly failed: %v", err)
		return err
	}
	assembleBar.Set(max(len(docs.Schemas), 1))
	assembleBar.Finish()

	if err := ctx.Err(); err != nil {
		return err
	}

	// --- Phase 3: Exporting ---
	exporters := exporter.GetExporters(cfg.Output.Formats)
	logger.Info("Phase 3: Exporting %d formats...", len(exporters))
	exportBar := pipeline.NextPhase(max(len(exporters), 1))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(doc, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		exportBar.Increment()
	}
	exportBar.Finish()

	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("%d of %d exports failed: %w", len(exportErrors), len(exporters), errors.Join(exportErrors...))
	}

	pipeline.PrintSummary(ui.RenderSummary{
		Groups:      len(doc.Groups),
		Schemas:     doc.SchemaCount(),
		CustomTypes: len(doc.Types),
	})
	logger.Info("✅ Rendered %d schemas. Check [%s] directory.", doc.SchemaCount(), cfg.Output.Dir)
	logger.InfoClean("   Log file: %s", logger.GetLogFilePath())
	return nil
}

func printBanner(w io.Writer) {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                       API DOCS v` + appVersion + `                     ║
║          Schema descriptions to browsable docs            ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Fprintln(w, banner)
}

func sanitizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
