// Package chart draws the monthly expense chart as a PNG image.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when every month of the year is zero.
var ErrNoData = errors.New("no expenses to chart")

var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// barColor matches the terminal chart's orange.
var barColor = drawing.ColorFromHex("DA702C")

// RenderMonthlyPNG writes a bar chart of the twelve monthly totals of year.
func RenderMonthlyPNG(w io.Writer, year int, totals [12]decimal.Decimal) error {
	bars := make([]chart.Value, 0, len(totals))
	hasData := false
	for i, t := range totals {
		v := t.InexactFloat64()
		if v > 0 {
			hasData = true
		}
		bars = append(bars, chart.Value{
			Label: months[i],
			Value: v,
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
				StrokeWidth: 1,
			},
		})
	}
	if !hasData {
		return fmt.Errorf("%d: %w", year, ErrNoData)
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Monthly expenses %d", year),
		Width:      1024,
		Height:     512,
		BarWidth:   50,
		BarSpacing: 20,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}
