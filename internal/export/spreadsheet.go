package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

// maxSheetName is the longest sheet name spreadsheet applications accept.
const maxSheetName = 31

// sheetNameReplacer swaps the characters workbooks refuse in sheet names.
var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "-", "]", "-",
)

// SheetName names the report sheet after the cashbook, cut to the sheet-name limit.
// Sheet names may not start or end with an apostrophe.
func SheetName(cashbookName string) string {
	name := strings.Trim(sheetNameReplacer.Replace(cashbookName), "'")
	runes := []rune(name + " Report")
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return strings.TrimRight(string(runes), "'")
}

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "B", 12},
	{"C", "C", 6},
	{"D", "F", 16},
	{"G", "G", 30},
	{"H", "J", 12},
}

// Spreadsheet renders the report as an XLSX workbook: a bold header row, one row per
// transaction and a bold TOTALS row two rows below the data.
func Spreadsheet(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(report.CashbookName)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", bold); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		var in, out any = "", ""
		if row.Type == ledger.In {
			in = row.Amount.InexactFloat64()
		} else {
			out = row.Amount.InexactFloat64()
		}
		values := []any{
			row.Date.String(),
			row.Time,
			string(row.Type),
			orDash(row.Party),
			orDash(row.Category),
			orDash(row.PaymentMode),
			row.Remark,
			in,
			out,
			row.Balance.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	totalsRow := len(report.Rows) + 3
	totals := []any{
		"TOTALS",
		report.Totals.TotalIn.InexactFloat64(),
		report.Totals.TotalOut.InexactFloat64(),
		report.Totals.NetBalance.InexactFloat64(),
	}
	start := fmt.Sprintf("G%d", totalsRow)
	if err := f.SetSheetRow(sheet, start, &totals); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, start, fmt.Sprintf("J%d", totalsRow), bold); err != nil {
		return nil, err
	}

	for _, c := range columnWidths {
		if err := f.SetColWidth(sheet, c.from, c.to, c.width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
