// Package rollsheet renders a board's current configuration and results as a
// printable one-page PDF.
package rollsheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"diceroller/internal/dice"
	"diceroller/internal/errs"
)

const (
	pageW     = 595
	margin    = 40
	rowH      = 22
	swatch    = 12
	fontSize  = 10
	titleSize = 18
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"", 24, "C"},
	{"Die", 70, "L"},
	{"Count", 50, "C"},
	{"Modifier", 60, "C"},
	{"Rolls", 231, "L"},
	{"Result", 80, "R"},
}

// fallbackRGB is used for colors that are not #rrggbb.
var fallbackRGB = [3]int{100, 116, 139}

// Generate returns PDF bytes listing every die of b: its face count, count,
// modifier, last rolls and result. Dice that were never rolled show a dash.
func Generate(b dice.Board, title string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(pageW-2*margin, 24, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize-2)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(pageW-2*margin, 14, now.Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	// Header row
	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(226, 232, 240)
	for _, c := range columns {
		pdf.CellFormat(c.width, rowH, c.title, "B", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", fontSize)
	total, rolled := 0, 0
	for _, d := range b.Dice {
		x, y := pdf.GetXY()
		rgb := parseHex(d.Color)
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.Rect(x+(columns[0].width-swatch)/2, y+(rowH-swatch)/2, swatch, swatch, "F")
		pdf.SetX(x + columns[0].width)

		name := "D" + strconv.Itoa(d.Faces)
		if d.Selected {
			name += " *"
		}
		result := "-"
		if d.Result != nil {
			result = strconv.Itoa(*d.Result)
			total += *d.Result
			rolled++
		}
		cells := []string{
			name,
			strconv.Itoa(d.Count),
			fmt.Sprintf("%+d", d.Modifier),
			truncate(pdf, dice.FormatRolls(d.Rolls), columns[4].width-4),
			result,
		}
		for i, s := range cells {
			c := columns[i+1]
			pdf.CellFormat(c.width, rowH, s, "B", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", fontSize+2)
	summary := "No dice rolled yet"
	if rolled > 0 {
		summary = fmt.Sprintf("Grand total of %d rolled dice: %d", rolled, total)
	}
	pdf.CellFormat(pageW-2*margin, rowH, summary, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "I", fontSize-2)
	pdf.CellFormat(pageW-2*margin, 14, "* selected for the next roll", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "render roll sheet")
	}
	return buf.Bytes(), nil
}

// parseHex reads "#rrggbb" (the # is optional).
func parseHex(s string) [3]int {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallbackRGB
	}
	var rgb [3]int
	for i := range rgb {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return fallbackRGB
		}
		rgb[i] = int(v)
	}
	return rgb
}

// truncate shortens s with an ellipsis until it fits in w points.
func truncate(pdf *gofpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}
