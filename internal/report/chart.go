package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
)

// Bar is one horizontal chart bar.
type Bar struct {
	Label string
	Value float64
	Color string // falls back to the chart's gain/loss color by sign
}

// BarChartOptions sizes and brands a chart. Height grows with the number
// of bars, so only the width is configurable.
type BarChartOptions struct {
	Width     int
	Title     string
	XLabel    string
	Source    string
	GainColor string
	LossColor string
}

func (o BarChartOptions) withDefaults() BarChartOptions {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.GainColor == "" {
		o.GainColor = "#5A06F5"
	}
	if o.LossColor == "" {
		o.LossColor = "#632E62"
	}
	return o
}

// RenderBarChartSVG draws a horizontal bar chart: bars in the given order
// top to bottom, a zero axis, dashed grid, signed value labels and a
// source footer. The bars are expected already sorted.
func RenderBarChartSVG(bars []Bar, opt BarChartOptions) ([]byte, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars to draw")
	}
	opt = opt.withDefaults()

	// Value range always spans zero so the axis is visible.
	minV, maxV := 0.0, 0.0
	for _, b := range bars {
		if b.Value < minV {
			minV = b.Value
		}
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	if minV == maxV {
		maxV = minV + 1
	}
	pad := (maxV - minV) * 0.15
	minV -= pad
	maxV += pad

	barH := 34.0
	gap := 14.0
	mLeft := 280.0
	mRight := 90.0
	mTop := 70.0
	mBottom := 90.0

	plotH := float64(len(bars))*(barH+gap) + gap
	w := float64(opt.Width)
	h := mTop + plotH + mBottom
	plotW := w - mLeft - mRight

	xOf := func(v float64) float64 {
		return mLeft + (v-minV)/(maxV-minV)*plotW
	}
	zeroX := xOf(0)

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opt.Width, int(h), opt.Width, int(h))
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", opt.Width, int(h))

	if opt.Title != "" {
		fmt.Fprintf(&b, `<text x="%s" y="40" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="22" font-weight="bold">%s</text>`+"\n",
			f(w/2), html.EscapeString(opt.Title))
	}

	// Dashed grid at quarter intervals.
	for i := 0; i <= 4; i++ {
		v := minV + (maxV-minV)*float64(i)/4
		x := xOf(v)
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#CCCCCC" stroke-width="0.7" stroke-dasharray="4 3"/>`+"\n",
			f(x), f(mTop), f(x), f(mTop+plotH))
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="12" fill="#555555">%s</text>`+"\n",
			f(x), f(mTop+plotH+22), f(v))
	}

	for i, bar := range bars {
		y := mTop + gap + float64(i)*(barH+gap)
		color := bar.Color
		if color == "" {
			color = opt.GainColor
			if bar.Value < 0 {
				color = opt.LossColor
			}
		}

		x0, x1 := zeroX, xOf(bar.Value)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		width := x1 - x0
		if width < 0.5 {
			width = 0.5
		}
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="black" stroke-width="0.5"/>`+"\n",
			f(x0), f(y), f(width), f(barH), color)

		// Group label left of the plot.
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="end" font-family="Segoe UI, sans-serif" font-size="14">%s</text>`+"\n",
			f(mLeft-10), f(y+barH/2+5), html.EscapeString(bar.Label))

		// Signed value label at the bar tip.
		labelX := x1 + 8
		anchor := "start"
		if bar.Value < 0 {
			labelX = x0 - 8
			anchor = "end"
		}
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="%s" font-family="Segoe UI, sans-serif" font-size="13" font-weight="bold">%+.2f%%</text>`+"\n",
			f(labelX), f(y+barH/2+5), anchor, bar.Value)
	}

	// Zero axis above the bars' grid.
	fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="1"/>`+"\n",
		f(zeroX), f(mTop), f(zeroX), f(mTop+plotH))

	if opt.XLabel != "" {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="14" font-weight="bold">%s</text>`+"\n",
			f(mLeft+plotW/2), f(mTop+plotH+50), html.EscapeString(opt.XLabel))
	}
	if opt.Source != "" {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-family="Segoe UI, sans-serif" font-size="11" font-style="italic" fill="#666666">%s</text>`+"\n",
			f(w/2), f(h-18), html.EscapeString(opt.Source))
	}

	b.WriteString("</svg>\n")
	return b.Bytes(), nil
}

// WriteBarChartSVG renders the chart and writes it to path.
func WriteBarChartSVG(path string, bars []Bar, opt BarChartOptions) error {
	data, err := RenderBarChartSVG(bars, opt)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
