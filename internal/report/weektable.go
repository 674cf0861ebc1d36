package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// WeekTableOptions brands the earnings week table image.
type WeekTableOptions struct {
	Width       int
	Title       string
	Source      string
	HeaderColor string
}

// RenderWeekTableSVG draws the earnings week as a two-column table image:
// date cells on the left, comma-joined tickers on the right, branded
// header row.
func RenderWeekTableSVG(week []DayGroup, opt WeekTableOptions) ([]byte, error) {
	if len(week) == 0 {
		return nil, fmt.Errorf("no rows to draw")
	}
	if opt.Width <= 0 {
		opt.Width = 1400
	}
	if opt.Title == "" {
		opt.Title = "Earnings to Watch This Week"
	}
	if opt.HeaderColor == "" {
		opt.HeaderColor = "#4304B7"
	}

	headerH := 46.0
	rowH := 64.0
	mTop := 80.0
	mBottom := 60.0
	mSide := 40.0

	w := float64(opt.Width)
	tableW := w - 2*mSide
	dateW := tableW * 0.2
	h := mTop + headerH + rowH*float64(len(week)) + mBottom

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opt.Width, int(h), opt.Width, int(h))
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", opt.Width, int(h))
	fmt.Fprintf(&b, `<text x="%s" y="48" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="26" font-weight="bold">%s</text>`+"\n",
		f(w/2), html.EscapeString(opt.Title))

	// Header row.
	fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		f(mSide), f(mTop), f(tableW), f(headerH), opt.HeaderColor)
	fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="17" font-weight="bold" fill="white">Date</text>`+"\n",
		f(mSide+dateW/2), f(mTop+headerH/2+6))
	fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="17" font-weight="bold" fill="white">Symbols</text>`+"\n",
		f(mSide+dateW+(tableW-dateW)/2), f(mTop+headerH/2+6))

	for i, day := range week {
		y := mTop + headerH + float64(i)*rowH
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="#F0F0F0" stroke="#CCCCCC"/>`+"\n",
			f(mSide), f(y), f(dateW), f(rowH))
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="white" stroke="#CCCCCC"/>`+"\n",
			f(mSide+dateW), f(y), f(tableW-dateW), f(rowH))

		fmt.Fprintf(&b, `<text x="%s" y="%s" font-family="Segoe UI, sans-serif" font-size="15" font-weight="bold">%s</text>`+"\n",
			f(mSide+12), f(y+rowH/2-4), day.Date.Format("2006-01-02"))
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-family="Segoe UI, sans-serif" font-size="13" fill="#444444">%s</text>`+"\n",
			f(mSide+12), f(y+rowH/2+16), day.Date.Format("Monday, January 02"))
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-family="Segoe UI, sans-serif" font-size="15">%s</text>`+"\n",
			f(mSide+dateW+14), f(y+rowH/2+5), html.EscapeString(strings.Join(day.Symbols, ", ")))
	}

	if opt.Source != "" {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="12" font-style="italic" fill="#666666">%s</text>`+"\n",
			f(w/2), f(h-22), html.EscapeString(opt.Source))
	}

	b.WriteString("</svg>\n")
	return b.Bytes(), nil
}

// WriteWeekTableSVG renders the week table and writes it to path.
func WriteWeekTableSVG(path string, week []DayGroup, opt WeekTableOptions) error {
	data, err := RenderWeekTableSVG(week, opt)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
