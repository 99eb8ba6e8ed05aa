package exporter

import (
	"encoding/json"
	"fmt"
	"os"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/logger"
)

// JSONExporter dumps the navigation and content trees for other presentation layers
type JSONExporter struct {
	// Stateless
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(doc *docgen.Document, cfg *config.Config) error {
	if doc == nil {
		return docgen.ErrNilDocs
	}

	outputFile := cfg.GetOutputPath("json")
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	logger.Info("🗂  JSON document generated: %s", outputFile)
	return nil
}
