package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// DeckOptions brands the gainers/losers one-pager.
type DeckOptions struct {
	GainColor string // header/title fill for the gainers table
	LossColor string // header/title fill for the losers table
	Source    string
}

var deckHeaders = []string{"Ticker", "Company Name", "Price", "Chg%", "Exchange"}

// WriteMoversDeck writes a single-sheet workbook with the gainers table on
// the left and the losers table on the right, branded headers and zebra
// rows. It is the spreadsheet rendition of the one-slide deck the daily
// report is distributed as.
func WriteMoversDeck(path string, gainers, losers []Mover, opt DeckOptions) error {
	if len(gainers) == 0 && len(losers) == 0 {
		return fmt.Errorf("no movers to write")
	}
	if opt.GainColor == "" {
		opt.GainColor = "#4304B7"
	}
	if opt.LossColor == "" {
		opt.LossColor = "#632E62"
	}

	const sheet = "Top Movers"
	wb := excelize.NewFile()
	defer wb.Close()

	idx, err := wb.NewSheet(sheet)
	if err != nil {
		return err
	}
	wb.SetActiveSheet(idx)
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, width := range map[string]float64{
		"A": 9, "B": 30, "C": 11, "D": 9, "E": 11,
		"G": 9, "H": 30, "I": 11, "J": 9, "K": 11,
	} {
		if err := wb.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	if err := writeMoversTable(wb, sheet, "A", "Top Gainers", gainers, opt.GainColor); err != nil {
		return err
	}
	if err := writeMoversTable(wb, sheet, "G", "Top Losers", losers, opt.LossColor); err != nil {
		return err
	}

	if opt.Source != "" {
		rows := len(gainers)
		if len(losers) > rows {
			rows = len(losers)
		}
		cell := fmt.Sprintf("A%d", rows+4)
		if err := wb.SetCellValue(sheet, cell, opt.Source); err != nil {
			return err
		}
		style, err := wb.NewStyle(&excelize.Style{
			Font: &excelize.Font{Italic: true, Size: 10, Color: "666666"},
		})
		if err != nil {
			return err
		}
		if err := wb.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return wb.SaveAs(path)
}

func writeMoversTable(wb *excelize.File, sheet, startCol, title string, movers []Mover, brand string) error {
	col := []rune(startCol)[0]
	cell := func(offset, row int) string {
		return fmt.Sprintf("%c%d", col+rune(offset), row)
	}

	titleStyle, err := wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: brand[1:]},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brand[1:]}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	zebraStyle, err := wb.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
	})
	if err != nil {
		return err
	}

	if err := wb.SetCellValue(sheet, cell(0, 1), title); err != nil {
		return err
	}
	if err := wb.MergeCell(sheet, cell(0, 1), cell(4, 1)); err != nil {
		return err
	}
	if err := wb.SetCellStyle(sheet, cell(0, 1), cell(4, 1), titleStyle); err != nil {
		return err
	}

	for i, h := range deckHeaders {
		if err := wb.SetCellValue(sheet, cell(i, 2), h); err != nil {
			return err
		}
	}
	if err := wb.SetCellStyle(sheet, cell(0, 2), cell(4, 2), headerStyle); err != nil {
		return err
	}

	for i, m := range movers {
		row := i + 3
		values := []any{
			m.Symbol,
			m.Name,
			fmt.Sprintf("$%.2f", m.Price),
			fmt.Sprintf("%+.1f%%", m.ChangePct),
			m.Exchange,
		}
		for j, v := range values {
			if err := wb.SetCellValue(sheet, cell(j, row), v); err != nil {
				return err
			}
		}
		if row%2 == 0 {
			if err := wb.SetCellStyle(sheet, cell(0, row), cell(4, row), zebraStyle); err != nil {
				return err
			}
		}
	}
	return nil
}
