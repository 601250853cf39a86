package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	remarkLimit = 20
	rowHeight   = 6.0
	pageMargin  = 12.0
)

var columnWidths = []float64{22, 16, 12, 32, 32, 28, 44, 24, 24, 26}

// Document renders the report as a landscape letter PDF: title, generation time, a summary
// table and the transaction table, whose header repeats on every page.
func Document(report *Report) ([]byte, error) {
	pdf := render(report)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func render(report *Report) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Report: "+report.CashbookName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if report.BusinessName != "" {
		pdf.CellFormat(0, 6, tr(report.BusinessName), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	summaryHeader := []string{"Total In", "Total Out", "Net Balance"}
	summaryValues := []string{
		report.Totals.TotalIn.StringFixed(2),
		report.Totals.TotalOut.StringFixed(2),
		report.Totals.NetBalance.StringFixed(2),
	}
	headerStyle(pdf)
	for _, h := range summaryHeader {
		pdf.CellFormat(36, 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, v := range summaryValues {
		pdf.CellFormat(36, 8, v, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(12)

	tableHeader(pdf)
	_, pageHeight := pdf.GetPageSize()
	for _, row := range report.Rows {
		if pdf.GetY()+rowHeight > pageHeight-pageMargin-6 {
			pdf.AddPage()
			tableHeader(pdf)
		}
		in, out := row.split()
		cells := []string{
			row.Date.String(),
			row.Time,
			string(row.Type),
			tr(orDash(row.Party)),
			tr(orDash(row.Category)),
			tr(orDash(row.PaymentMode)),
			tr(truncate(row.Remark, remarkLimit)),
			in,
			out,
			row.Balance.StringFixed(2),
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetFillColor(245, 245, 220)
		for i, cell := range cells {
			pdf.CellFormat(columnWidths[i], rowHeight, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}

func headerStyle(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
}

func tableHeader(pdf *fpdf.Fpdf) {
	headerStyle(pdf)
	for i, h := range []string{"Date", "Time", "Type", "Party", "Category", "Mode", "Remark", "In", "Out", "Balance"} {
		pdf.CellFormat(columnWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
