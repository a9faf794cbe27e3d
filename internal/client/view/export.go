package view

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"animal-tracker/internal/domain/animals"
)

const SheetName = "Animals"

// ExportXLSX escribe records como planilla: una fila por registro, una columna por campo.
// La foto no entra en una celda (límite de excelize.TotalCellChars): se exporta su
// resumen. Otro texto más largo se corta con una marca que indica el largo real.
func ExportXLSX(w io.Writer, records []animals.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	headers := ExportHeaders()
	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	for i, r := range records {
		row := i + 2
		for col, v := range exportRow(r) {
			if v == "" {
				continue
			}
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("export: freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

// ExportHeaders: ID, las etiquetas de animals.Fields y "Birthdate Unknown".
func ExportHeaders() []string {
	out := []string{"ID"}
	for _, f := range animals.Fields {
		out = append(out, f.Label)
	}
	return append(out, "Birthdate Unknown")
}

func exportRow(r animals.Record) []string {
	r = animals.Normalize(r)
	out := []string{r.ID}
	for _, f := range animals.Fields {
		v := *f.Ptr(&r)
		if f.Key == "photo" && v != "" {
			v = photoSummary(v)
		}
		out = append(out, v)
	}
	unknown := ""
	if r.BirthdateUnknown {
		unknown = "Yes"
	}
	return append(out, unknown)
}

func setCell(f *excelize.File, col, row int, v string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStr(SheetName, cell, fitCell(v)); err != nil {
		return fmt.Errorf("export: cell %s: %w", cell, err)
	}
	return nil
}

// fitCell deja v dentro del límite de una celda. SetCellStr recorta en silencio.
func fitCell(v string) string {
	n := utf8.RuneCountInString(v)
	if n <= excelize.TotalCellChars {
		return v
	}
	marker := fmt.Sprintf(" [truncated: %d chars]", n)
	keep := excelize.TotalCellChars - utf8.RuneCountInString(marker)
	return string([]rune(v)[:keep]) + marker
}
