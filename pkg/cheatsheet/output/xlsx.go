// Package output writes cheatsheet rows to xlsx workbooks and reads them back.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
)

// printAreaName is the workbook defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// Column widths for Phase, Source, Ability Name and Description.
var columnWidths = []float64{26, 30, 30, 90}

// Options configures workbook output.
type Options struct {
	// Sheet is the name of the single sheet. Defaults to "Cheatsheet".
	Sheet string
}

func (o Options) sheet() string {
	if o.Sheet == "" {
		return "Cheatsheet"
	}
	return o.Sheet
}

// WriteXLSX writes rows under a header row to a new workbook at path.
// The workbook is written to a temporary file next to path and renamed
// into place, so path is either fully written or left untouched.
func WriteXLSX(path string, rows []models.Row, opts Options) error {
	f, err := buildWorkbook(rows, opts.sheet())
	if err != nil {
		return err
	}
	defer f.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".cheatsheet-*.xlsx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	// CreateTemp opens with 0600; the cheatsheet is meant to be shared.
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func buildWorkbook(rows []models.Row, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, rows, sheet); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, rows []models.Row, sheet string) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("invalid sheet name %q: %w", sheet, err)
	}

	header := make([]interface{}, len(models.Header))
	for i, h := range models.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.Values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return formatSheet(f, sheet, len(rows)+1)
}

// formatSheet applies layout to a sheet holding lastRow rows including
// the header: column widths, wrapped descriptions, a bold frozen header,
// an autofilter and a print area over the table.
func formatSheet(f *excelize.File, sheet string, lastRow int) error {
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(models.Header))
	if err != nil {
		return err
	}
	if err := f.SetColStyle(sheet, lastCol, wrap); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	ref, err := tableRange(len(models.Header), lastRow, false)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, ref, nil); err != nil {
		return err
	}

	absRef, err := tableRange(len(models.Header), lastRow, true)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: quoteSheet(sheet) + "!" + absRef,
		Scope:    sheet,
	})
}

// tableRange returns the range from A1 to the given column and row,
// e.g. "A1:D10" or "$A$1:$D$10".
func tableRange(cols, rows int, abs bool) (string, error) {
	start, err := excelize.CoordinatesToCellName(1, 1, abs)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(cols, rows, abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
