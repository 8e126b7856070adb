package project

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

var materialHeader = []string{"Name", "Type", "Quantity", "Unit", "Cost", "Notes", "Added"}

// ExportCSV writes the project as CSV: a header block with the project
// fields, a blank row, then the materials table.
func ExportCSV(w io.Writer, p *Project) error {
	cw := csv.NewWriter(w)

	headerRows := [][]string{
		{"Project", p.Name},
		{"Description", p.Description},
		{"Location", p.Location},
		{"Created", p.CreatedAt.Format(time.RFC3339)},
		{"Total Cost", formatCost(p.TotalCost())},
		{},
		materialHeader,
	}
	for _, row := range headerRows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	for _, m := range p.Materials {
		cost := ""
		if m.Cost != nil {
			cost = formatCost(*m.Cost)
		}
		row := []string{
			m.Name,
			m.Type,
			strconv.FormatFloat(m.Quantity, 'f', -1, 64),
			m.Unit,
			cost,
			m.Notes,
			m.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes the project as a single-sheet spreadsheet with the same
// layout as the CSV export.
func ExportXLSX(w io.Writer, p *Project) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Project"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Project", p.Name},
		{"Description", p.Description},
		{"Location", p.Location},
		{"Created", p.CreatedAt.Format(time.RFC3339)},
		{"Total Cost", p.TotalCost()},
		{},
	}

	header := make([]interface{}, len(materialHeader))
	for i, h := range materialHeader {
		header[i] = h
	}
	rows = append(rows, header)

	for _, m := range p.Materials {
		var cost interface{}
		if m.Cost != nil {
			cost = *m.Cost
		}
		rows = append(rows, []interface{}{
			m.Name, m.Type, m.Quantity, m.Unit, cost, m.Notes,
			m.CreatedAt.Format(time.RFC3339),
		})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("build xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("build xlsx: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
