package word

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Placeholders replaced in the template
const (
	PlaceholderTitle        = "{{Title}}"
	PlaceholderDate         = "{{Date}}"
	PlaceholderTotalSchemas = "{{TotalSchemas}}"
	PlaceholderContent      = "{{Content}}"
)

var templateParts = []struct {
	name    string
	content string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	// Required by some parsers
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="36"/></w:rPr><w:t>` + PlaceholderTitle + `</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Date: ` + PlaceholderDate + `</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Total APIs: ` + PlaceholderTotalSchemas + `</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:rFonts w:ascii="Consolas" w:hAnsi="Consolas"/></w:rPr><w:t xml:space="preserve">` + PlaceholderContent + `</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// Template returns the default .docx template with every placeholder
func Template() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, part := range templateParts {
		fw, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("template part %s: %w", part.name, err)
		}
		if _, err := fw.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("template part %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
