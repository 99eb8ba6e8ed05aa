package word

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/exporter/common"
	"apidocs/internal/logger"

	"github.com/nguyenthenguyen/docx"
)

// WordExporter fills a .docx template with the rendered document
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

// openTemplate reads the configured template, or the built-in one when path is empty
func openTemplate(path string) (*docx.ReplaceDocx, error) {
	if path != "" {
		r, err := docx.ReadDocxFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read docx template %s: %w", path, err)
		}
		return r, nil
	}

	data, err := Template()
	if err != nil {
		return nil, fmt.Errorf("failed to build template: %w", err)
	}
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in template: %w", err)
	}
	return r, nil
}

func (e *WordExporter) Export(doc *docgen.Document, cfg *config.Config) error {
	r, err := openTemplate(cfg.Output.WordTemplate)
	if err != nil {
		return err
	}
	defer r.Close()

	editable := r.Editable()

	// Summary placeholders, then the body as plain text (the library handles XML encoding)
	replacements := []struct{ placeholder, value string }{
		{PlaceholderTitle, doc.Title},
		{PlaceholderDate, time.Now().Format("2006-01-02")},
		{PlaceholderTotalSchemas, fmt.Sprintf("%d", doc.SchemaCount())},
		{PlaceholderContent, BuildText(doc)},
	}
	for _, rep := range replacements {
		if err := editable.Replace(rep.placeholder, rep.value, -1); err != nil {
			return fmt.Errorf("failed to fill %s: %w", rep.placeholder, err)
		}
	}

	outFile := cfg.GetOutputPath("docx")
	if err := editable.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	logger.Info("📄 Word document generated: %s", outFile)
	return nil
}

// BuildText renders the document as plain text: the navigation outline, the
// custom types and every schema section in render order.
func BuildText(doc *docgen.Document) string {
	var sb strings.Builder
	labels := doc.Labels

	sb.WriteString(labels.APIList + "\n")
	for _, row := range common.FlattenNav(doc.Nav) {
		line := strings.Repeat("  ", row.Indent) + row.Title
		if row.Route != "" {
			line += "  (" + row.Route + ")"
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")

	if len(doc.Types) > 0 {
		sb.WriteString(strings.ToUpper(labels.CustomTypes) + ":\n")
		for _, t := range doc.Types {
			sb.WriteString(fmt.Sprintf("%s  %s\n", t.Name, t.Description))
			if t.Checker != "" {
				sb.WriteString("  checker:   " + t.Checker + "\n")
			}
			if t.Formatter != "" {
				sb.WriteString("  formatter: " + t.Formatter + "\n")
			}
		}
		sb.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")
	}

	schemas := common.OrderedSchemas(doc)
	for i, schema := range schemas {
		buildSchemaText(&sb, schema, labels)

		if i < len(schemas)-1 {
			sb.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
	}

	return sb.String()
}

// buildSchemaText builds plain text documentation for a single schema
func buildSchemaText(sb *strings.Builder, s docgen.SchemaSection, labels docgen.Labels) {
	sb.WriteString(fmt.Sprintf("[%s] %s\n", s.Method, s.Path))
	if s.Title != "" {
		sb.WriteString(s.Title + "\n")
	}
	if s.Description != "" {
		sb.WriteString(s.Description + "\n")
	}
	sb.WriteString(labels.Group + s.Group + "\n")
	if s.SourceFile != "" {
		sb.WriteString(labels.SourceFile + s.SourceFile + "\n")
	}
	sb.WriteString("\n")

	if len(s.Params) > 0 {
		sb.WriteString(strings.ToUpper(labels.RequestParams) + ":\n")
		sb.WriteString(fmt.Sprintf("%-20s %-15s %-25s %s\n", "Name", "Type", labels.Default, "Description"))
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, p := range s.Params {
			description := p.Comment
			if p.TypeDescription != "" {
				description = strings.TrimSpace(p.TypeDescription + ". " + p.Comment)
			}
			sb.WriteString(fmt.Sprintf("%-20s %-15s %-25s %s\n",
				truncate(p.Name, 20),
				truncate(p.Type, 15),
				truncate(p.DefaultText, 25),
				description))
		}
		sb.WriteString("\n")
	}

	if len(s.Required) > 0 {
		sb.WriteString(strings.ToUpper(labels.RequiredParams) + ":\n")
		for _, line := range s.Required {
			sb.WriteString("  • " + line.Label + "\n")
		}
		sb.WriteString("\n")
	}

	if len(s.Examples) > 0 {
		sb.WriteString(strings.ToUpper(labels.Examples) + ":\n")
		for _, ex := range s.Examples {
			if ex.Comment != "" {
				sb.WriteString(ex.Comment + "\n")
			}
			sb.WriteString(ex.Input + "\n")
			sb.WriteString("=> " + ex.Output + "\n\n")
		}
	}
}

// truncate truncates a string to a maximum number of runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
