package html

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/exporter/common"
	"apidocs/internal/logger"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// PageData is the view model of the documentation page
type PageData struct {
	Doc          *docgen.Document
	Nav          []common.NavRow
	GeneratedAt  string
	TotalSchemas int
}

var pageTemplate = template.Must(template.New("api-docs").Funcs(template.FuncMap{
	"methodColor": getMethodColor,
	"methodBadge": getMethodBadge,
	"millis": func(d time.Duration) int64 {
		return d.Milliseconds()
	},
	"indent": func(level int) int {
		return 12 + level*16
	},
	// Anchors like "[GET]/user" must survive as fragment text, not be query-escaped
	"anchorHref": func(anchor string) template.URL {
		return template.URL("#" + anchor)
	},
}).Parse(APIDocsTemplate))

func (e *HTMLExporter) Export(doc *docgen.Document, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath("html")

	// Render fully before touching the file so a failed render leaves no partial page
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write html: %w", err)
	}

	logger.Info("🌐 HTML page generated: %s", outputFile)
	return nil
}

// Render writes the single page documentation of doc to w
func Render(w io.Writer, doc *docgen.Document) error {
	if doc == nil {
		return fmt.Errorf("html: %w", docgen.ErrNilDocs)
	}

	data := PageData{
		Doc:          doc,
		Nav:          common.FlattenNav(doc.Nav),
		GeneratedAt:  time.Now().Format("2006-01-02"),
		TotalSchemas: doc.SchemaCount(),
	}
	return pageTemplate.Execute(w, data)
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}

// getMethodBadge returns badge text for HTTP method
func getMethodBadge(method string) string {
	return strings.ToUpper(method)
}
