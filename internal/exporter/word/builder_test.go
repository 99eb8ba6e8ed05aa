package word

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apidocs/internal/exporter/exportertest"
)

func readDocumentXML(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("word/document.xml missing from %s", path)
	return ""
}

func TestTemplate(t *testing.T) {
	data, err := Template()
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
	}, names)

	path := filepath.Join(t.TempDir(), "template.docx")
	require.NoError(t, os.WriteFile(path, data, 0644))
	document := readDocumentXML(t, path)
	for _, placeholder := range []string{PlaceholderTitle, PlaceholderDate, PlaceholderTotalSchemas, PlaceholderContent} {
		assert.Contains(t, document, placeholder)
	}
}

func TestWordExport(t *testing.T) {
	cfg := exportertest.Config(t, "word")

	require.NoError(t, NewWordExporter().Export(exportertest.Document(t), cfg))

	document := readDocumentXML(t, cfg.GetOutputPath("docx"))
	assert.NotContains(t, document, "{{")
	assert.Contains(t, document, "Shop API")
	assert.Contains(t, document, "Total APIs: 3")
	assert.Contains(t, document, "[GET] /user")
	assert.Contains(t, document, "[POST] /order")
	assert.Contains(t, document, "&lt;b&gt;by id&lt;/b&gt;")
}

func TestWordExportCustomTemplate(t *testing.T) {
	data, err := Template()
	require.NoError(t, err)

	cfg := exportertest.Config(t, "word")
	cfg.Output.WordTemplate = filepath.Join(t.TempDir(), "custom.docx")
	require.NoError(t, os.WriteFile(cfg.Output.WordTemplate, data, 0644))

	require.NoError(t, NewWordExporter().Export(exportertest.Document(t), cfg))
	assert.FileExists(t, cfg.GetOutputPath("docx"))
}

func TestWordExportMissingTemplate(t *testing.T) {
	cfg := exportertest.Config(t, "word")
	cfg.Output.WordTemplate = filepath.Join(t.TempDir(), "missing.docx")

	err := NewWordExporter().Export(exportertest.Document(t), cfg)
	assert.Error(t, err)
}

func TestBuildText(t *testing.T) {
	text := BuildText(exportertest.Document(t))

	assert.Contains(t, text, "API list\n")
	assert.Contains(t, text, "  Get user  (GET /user)\n")
	assert.Contains(t, text, "CUSTOM TYPES:\nPhone  mobile phone number\n")
	assert.Contains(t, text, "  checker:   v => /^1\\d{10}$/.test(v)\n")
	assert.Contains(t, text, "  • id, phone (one of)\n")
	assert.Contains(t, text, "// fetch\n// by id\n")
	assert.Contains(t, text, `"[Circular]"`)
	assert.NotContains(t, text, "token")

	// Schemas follow render order
	user := strings.Index(text, "[GET] /user")
	ping := strings.Index(text, "[GET] /ping")
	order := strings.Index(text, "[POST] /order")
	assert.Less(t, user, ping)
	assert.Less(t, ping, order)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "获取用户...", truncate("获取用户信息详情", 7))
}
