package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
)

// ErrNotCheatsheet indicates a sheet without the cheatsheet header row.
var ErrNotCheatsheet = errors.New("not a cheatsheet")

// Area is a cell range with 1-based inclusive bounds.
type Area struct {
	R1, C1 int
	R2, C2 int
}

// ReadRows reads the data rows of a cheatsheet sheet.
func ReadRows(path, sheet string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !isHeader(rows[0]) {
		return nil, fmt.Errorf("%w: sheet %q", ErrNotCheatsheet, sheet)
	}

	result := make([]models.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		// GetRows drops trailing empty cells.
		padded := make([]string, len(models.Header))
		copy(padded, cells)
		result = append(result, models.Row{
			Phase:       padded[0],
			Source:      padded[1],
			AbilityName: padded[2],
			Description: padded[3],
		})
	}
	return result, nil
}

func isHeader(cells []string) bool {
	if len(cells) != len(models.Header) {
		return false
	}
	for i, h := range models.Header {
		if cells[i] != h {
			return false
		}
	}
	return true
}

// ReadPrintArea returns the print area defined for sheet.
// ok is false when the sheet has none.
func ReadPrintArea(path, sheet string) (area Area, ok bool, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Area{}, false, err
	}
	defer f.Close()

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		name, a := parseAreaReference(dn.RefersTo)
		if a != nil && name == sheet {
			return *a, true, nil
		}
	}
	return Area{}, false, nil
}

// parseAreaReference parses 'Sheet Name'!$A$1:$D$10 or Sheet!$A$1:$D$10.
func parseAreaReference(ref string) (string, *Area) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", nil
	}
	sheet := ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	parts := strings.Split(strings.ReplaceAll(ref[idx+1:], "$", ""), ":")
	if len(parts) != 2 {
		return sheet, nil
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return sheet, nil
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return sheet, nil
	}
	return sheet, &Area{R1: r1, C1: c1, R2: r2, C2: c2}
}
