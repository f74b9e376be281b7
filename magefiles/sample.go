//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// sampleFile matches the CLI's default input so a bare `crm-import` run
// picks it up.
const sampleFile = "Trideck_45M_REBASE_IMPORT.xlsx"

// Sample writes a small demo workbook to the current directory.
func Sample() error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Tarih", "Tedarikçi", "Açıklama", "Tutar", "Para Birimi", "Onaylı"},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Deniz Tersanesi", "Gövde kaynak işçiliği", 125000.5, "TRY", true},
		{time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), "Öztürk Boya", "Astar, 2 kat", 18400, "TRY", false},
		{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "Marine Supply", "Winch, \"heavy duty\"", 3200, "EUR", nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(sampleFile); err != nil {
		return fmt.Errorf("saving %s: %w", sampleFile, err)
	}
	fmt.Printf("Wrote %s\n", sampleFile)
	return nil
}
