package httpapi

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/riskibarqy/music-league/internal/domain/standing"
)

const (
	chartLabelLimit = 30
	chartBarWidth   = 48
	chartMinWidth   = 480
	chartHeight     = 420
)

var (
	chartBackground = drawing.ColorFromHex("ffffff")
	chartBarFill    = drawing.ColorFromHex("4bc0c0")
	chartBarStroke  = drawing.ColorFromHex("2a8f8f")
	chartText       = drawing.ColorFromHex("333333")
)

// renderDistributionChart draws one bar per track with the points it
// received in the round.
func renderDistributionChart(title string, items []standing.TrackPoints) ([]byte, error) {
	if !hasPoints(items) {
		return renderEmptyChart("No votes or submissions yet for this round")
	}

	bars := make([]chart.Value, 0, len(items))
	for _, item := range items {
		bars = append(bars, chart.Value{
			Label: truncateLabel(item.Label, chartLabelLimit),
			Value: float64(item.Points),
			Style: chart.Style{
				FillColor:   chartBarFill,
				StrokeColor: chartBarStroke,
				StrokeWidth: 1,
			},
		})
	}

	width := chartMinWidth
	if needed := len(bars) * (chartBarWidth + 24); needed > width {
		width = needed
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    width,
		Height:   chartHeight,
		BarWidth: chartBarWidth,
		Background: chart.Style{
			FillColor: chartBackground,
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.Style{
			FontColor: chartText,
			FontSize:  8,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: chartText},
		},
		Bars: bars,
	}

	var buffer bytes.Buffer
	if err := graph.Render(chart.PNG, &buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderEmptyChart(msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:  chartMinWidth,
		Height: 200,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, _ chart.Style) {
				r.SetFontColor(chartText)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				r.Text(msg, (cb.Width()-tb.Width())/2, (cb.Height()+tb.Height())/2)
			},
		},
	}

	var buffer bytes.Buffer
	if err := graph.Render(chart.PNG, &buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// A bar chart with no positive value has an empty range, so it is drawn as
// the placeholder instead.
func hasPoints(items []standing.TrackPoints) bool {
	for _, item := range items {
		if item.Points > 0 {
			return true
		}
	}
	return false
}

func truncateLabel(label string, limit int) string {
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	return string(runes[:limit-3]) + "..."
}
