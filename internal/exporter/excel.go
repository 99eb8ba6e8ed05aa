package exporter

import (
	"fmt"
	"strings"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/exporter/common"
	"apidocs/internal/logger"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook
const (
	SheetTypes      = "Types"
	SheetSchemas    = "Schemas"
	SheetParameters = "Parameters"
	SheetExamples   = "Examples"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel workbook
func (e *ExcelExporter) Export(doc *docgen.Document, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath("xlsx")
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	schemas := common.OrderedSchemas(doc)

	// 1. Custom types
	if err := e.writeTypes(f, styler, doc.Types); err != nil {
		return err
	}

	// 2. One row per schema
	if err := e.writeSchemas(f, styler, schemas); err != nil {
		return err
	}

	// 3. One row per visible parameter
	if err := e.writeParameters(f, styler, schemas); err != nil {
		return err
	}

	// 4. One row per example
	if err := e.writeExamples(f, styler, schemas); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}
	if idx, err := f.GetSheetIndex(SheetSchemas); err == nil && idx != -1 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("📊 Excel report generated: %s", outputFile)
	return nil
}

// --- Types Sheet Logic ---

func (e *ExcelExporter) writeTypes(f *excelize.File, s *Styler, types []docgen.TypeEntry) error {
	sheet := SheetTypes
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	e.writeRow(f, sheet, 1, []string{"Name", "Description", "Checker", "Formatter"}, s.HeaderStyle)

	row := 2
	for _, t := range types {
		e.writeRow(f, sheet, row, []string{t.Name, t.Description, t.Checker, t.Formatter}, s.DefaultStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), s.CodeStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "D", 50)
	return nil
}

// --- Schemas Sheet Logic ---

func (e *ExcelExporter) writeSchemas(f *excelize.File, s *Styler, schemas []docgen.SchemaSection) error {
	sheet := SheetSchemas
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"No", "Group", "ID", "Route", "Title", "Description", "Source File", "Required"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	previousGroup := ""
	for i, schema := range schemas {
		values := []string{
			"",
			schema.Group,
			schema.ID,
			schema.Route,
			schema.Title,
			schema.Description,
			schema.SourceFile,
			requiredSummary(schema.Required),
		}

		style := s.DefaultStyle
		if schema.Group != previousGroup {
			style = s.GroupStyle
			previousGroup = schema.Group
		}
		e.writeRow(f, sheet, row, values, style)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		row++
	}

	f.SetColWidth(sheet, "B", "B", 15)
	f.SetColWidth(sheet, "C", "D", 35)
	f.SetColWidth(sheet, "E", "E", 25)
	f.SetColWidth(sheet, "F", "F", 50)
	f.SetColWidth(sheet, "G", "H", 30)
	return nil
}

// --- Parameters Sheet Logic ---

func (e *ExcelExporter) writeParameters(f *excelize.File, s *Styler, schemas []docgen.SchemaSection) error {
	sheet := SheetParameters
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Schema", "Name", "Type", "Type Description", "Comment", "Default", "Required"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	row := 2
	for _, schema := range schemas {
		required := requiredNames(schema.Required)
		for _, param := range schema.Params {
			values := []string{
				schema.ID,
				param.Name,
				param.Type,
				param.TypeDescription,
				param.Comment,
				param.DefaultText,
				required[param.Name],
			}
			e.writeRow(f, sheet, row, values, s.DefaultStyle)

			if required[param.Name] != "" {
				f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), s.RequiredStyle)
			}
			if !param.HasDefault {
				f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), s.MutedStyle)
			}
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 35)
	f.SetColWidth(sheet, "B", "C", 18)
	f.SetColWidth(sheet, "D", "E", 35)
	f.SetColWidth(sheet, "F", "G", 20)
	return nil
}

// --- Examples Sheet Logic ---

func (e *ExcelExporter) writeExamples(f *excelize.File, s *Styler, schemas []docgen.SchemaSection) error {
	sheet := SheetExamples
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	e.writeRow(f, sheet, 1, []string{"Schema", "No", "Comment", "Input", "Output"}, s.HeaderStyle)

	row := 2
	for _, schema := range schemas {
		for i, example := range schema.Examples {
			e.writeRow(f, sheet, row, []string{schema.ID, "", example.Comment, example.Input, example.Output}, s.CodeStyle)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), i+1)
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 35)
	f.SetColWidth(sheet, "C", "C", 30)
	f.SetColWidth(sheet, "D", "E", 50)
	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if val != "" {
			f.SetCellValue(sheet, cell, val)
		}
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

// requiredSummary joins the required block into a single cell
func requiredSummary(lines []docgen.RequiredLine) string {
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		labels = append(labels, line.Label)
	}
	return strings.Join(labels, "; ")
}

// requiredNames maps every required parameter name to "Yes" or "One of"
func requiredNames(lines []docgen.RequiredLine) map[string]string {
	names := make(map[string]string)
	for _, line := range lines {
		for _, name := range line.Names {
			if line.OneOf {
				if _, ok := names[name]; !ok {
					names[name] = "One of"
				}
				continue
			}
			names[name] = "Yes"
		}
	}
	return names
}
