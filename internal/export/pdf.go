package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"PATHFINDER_BACK-END/internal/models"
)

const (
	pageMargin   = 14.0
	footerSpace  = 18.0
	headerHeight = 40.0
	lineHeight   = 5.0
	cellPadding  = 2.5
)

var (
	teal      = [3]int{13, 148, 136}
	colWidths = [4]float64{25, 25, 0, 30}
	colTitles = [4]string{"Period", "Time", "Activity", "Cost"}
)

// WritePDF renders doc as a PDF: a header band, one table per day and a
// page footer
func WritePDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, 20, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Destination+" Itinerary", true)
	pdf.SetCreator("Pathfinder", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	widths := colWidths
	widths[2] = pageW - 2*pageMargin - widths[0] - widths[1] - widths[3]

	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - 10)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		half := (pageW - 2*pageMargin) / 2
		pdf.SetX(pageMargin)
		pdf.CellFormat(half, 4, "Generated by Pathfinder", "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 4, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	writeHeader(pdf, tr, doc, pageW)

	y := headerHeight + 10
	if doc.Weather != nil {
		pdf.SetXY(pageMargin, y)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Weather: %s %s", doc.Weather.Summary, doc.Weather.Temperature)), "", "L", false)
		y = pdf.GetY() + 5
	}

	for _, day := range doc.Itinerary.Days {
		if y > pageH-60 {
			pdf.AddPage()
			y = 20
		}
		pdf.SetXY(pageMargin, y)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(teal[0], teal[1], teal[2])
		pdf.CellFormat(0, 7, tr(strings.TrimSpace(fmt.Sprintf("Day %d: %s", day.Day, day.Date))), "", 1, "L", false, 0, "")
		y = pdf.GetY() + 1

		y = tableHeader(pdf, widths, y)
		for _, slot := range models.Slots {
			act := day.Activities.Get(slot)
			cells := [4]string{
				slot.Label(),
				act.Time,
				strings.TrimSpace(act.Name + "\n" + act.Description),
				act.Cost,
			}
			pdf.SetFont("Helvetica", "", 10)
			h := rowHeight(pdf, tr, widths, cells)
			if y+h > pageH-footerSpace {
				pdf.AddPage()
				y = tableHeader(pdf, widths, 20)
			}
			y = tableRow(pdf, tr, widths, cells, y, h)
		}
		y += 10
	}

	if len(doc.Hotels) > 0 {
		writeHotels(pdf, tr, doc.Hotels, y, pageH)
	}
	return pdf.Output(w)
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, doc Document, pageW float64) {
	pdf.SetFillColor(teal[0], teal[1], teal[2])
	pdf.Rect(0, 0, pageW, headerHeight, "F")
	pdf.SetTextColor(255, 255, 255)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(20, 20, tr(strings.ToUpper(doc.Destination)))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 30, fmt.Sprintf("%d Days Trip", doc.Days))

	right := func(y float64, s string) {
		s = tr(s)
		pdf.Text(pageW-20-pdf.GetStringWidth(s), y, s)
	}
	right(20, fmt.Sprintf("Budget: %s %s", FormatAmount(doc.BudgetLimit), doc.Currency()))
	right(30, fmt.Sprintf("Travelers: %d", doc.Travelers))
	right(37, fmt.Sprintf("Estimated total: %s %s", FormatAmount(doc.Itinerary.Budget.Total), doc.Currency()))
}

func tableHeader(pdf *fpdf.Fpdf, widths [4]float64, y float64) float64 {
	pdf.SetXY(pageMargin, y)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(teal[0], teal[1], teal[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(200, 200, 200)
	for i, title := range colTitles {
		align := "L"
		if i == 3 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, title, "1", 0, align, true, 0, "")
	}
	return y + 8
}

func rowHeight(pdf *fpdf.Fpdf, tr func(string) string, widths [4]float64, cells [4]string) float64 {
	lines := 1
	for i, c := range cells {
		n := len(pdf.SplitText(tr(c), widths[i]-2*cellPadding))
		lines = max(lines, n)
	}
	return float64(lines)*lineHeight + 2*cellPadding
}

func tableRow(pdf *fpdf.Fpdf, tr func(string) string, widths [4]float64, cells [4]string, y, h float64) float64 {
	pdf.SetTextColor(40, 40, 40)
	x := pageMargin
	for i, c := range cells {
		pdf.Rect(x, y, widths[i], h, "D")
		style, align := "", "L"
		switch i {
		case 0:
			style = "B"
		case 3:
			align = "R"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.SetXY(x+cellPadding, y+cellPadding)
		pdf.MultiCell(widths[i]-2*cellPadding, lineHeight, tr(c), "", align, false)
		x += widths[i]
	}
	return y + h
}

func writeHotels(pdf *fpdf.Fpdf, tr func(string) string, hotels []models.Hotel, y, pageH float64) {
	if y > pageH-70 {
		pdf.AddPage()
		y = 20
	}
	pdf.SetXY(pageMargin, y)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(teal[0], teal[1], teal[2])
	pdf.CellFormat(0, 7, "Where to stay", "", 1, "L", false, 0, "")

	for _, h := range hotels {
		if pdf.GetY() > pageH-footerSpace-20 {
			pdf.AddPage()
			pdf.SetY(20)
		}
		pdf.SetX(pageMargin)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s (%s) - %s / night", h.Name, h.Category, h.PricePerNight)), "", 1, "L", false, 0, "")
		pdf.SetX(pageMargin)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(strings.TrimSpace(h.Address+"\n"+h.Description)), "", "L", false)
		pdf.Ln(2)
	}
}
