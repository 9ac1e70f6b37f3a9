package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
)

// sheetNameReplacer strips characters Excel forbids in sheet names.
var sheetNameReplacer = strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")

func sheetName(title string) string {
	name := sheetNameReplacer.Replace(title)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

// Workbook builds one sheet per option, in the order given.
// The caller owns the returned file and must Close it.
func Workbook(p fixtures.Provider, id model.SimulationID, options []model.DownloadOptionID) (*excelize.File, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: no options selected", ErrUnknownOption)
	}

	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, opt := range options {
		table, err := BuildTable(p, id, opt)
		if err != nil {
			f.Close()
			return nil, err
		}

		name := sheetName(table.Title)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}

		if err := writeTable(f, name, table, bold); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeTable(f *excelize.File, sheet string, t *Table, headerStyle int) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

// WriteWorkbook streams the workbook for the given options to w.
func WriteWorkbook(w io.Writer, p fixtures.Provider, id model.SimulationID, options []model.DownloadOptionID) error {
	f, err := Workbook(p, id, options)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}
