package exporter

import (
	"strings"

	"apidocs/internal/exporter/html"
	"apidocs/internal/exporter/openapi"
	"apidocs/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats.
// Aliases map to the same exporter and unknown formats are skipped.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		name := CanonicalFormat(fmtStr)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case "excel":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word":
			exporters = append(exporters, word.NewWordExporter())
		case "openapi":
			exporters = append(exporters, openapi.NewOpenAPIExporter())
		case "json":
			exporters = append(exporters, NewJSONExporter())
		}
	}

	return exporters
}

// CanonicalFormat maps a format name or alias to its canonical name, or ""
func CanonicalFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "excel", "xlsx":
		return "excel"
	case "html":
		return "html"
	case "word", "docx":
		return "word"
	case "openapi", "oas", "swagger":
		return "openapi"
	case "json":
		return "json"
	}
	return ""
}
