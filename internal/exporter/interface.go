package exporter

import (
	"apidocs/internal/config"
	"apidocs/internal/docgen"
)

// Exporter is the unified interface for all presentation layers
type Exporter interface {
	Export(doc *docgen.Document, cfg *config.Config) error
}
