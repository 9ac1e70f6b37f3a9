// Package charts renders the statistics panel charts as SVG.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/format"
	"cessao-fidc/internal/model"
)

var (
	// ErrUnknownChart is returned for chart names other than maturity and states.
	ErrUnknownChart = errors.New("unknown chart")
	// ErrNoData is returned when the dataset has nothing to plot.
	ErrNoData = errors.New("no data to chart")
)

// Kind names a chart on the statistics panel.
type Kind string

const (
	KindMaturity Kind = "maturity"
	KindStates   Kind = "states"
)

// ParseKind accepts "maturity", "maturity.svg", "states" or "states.svg".
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSuffix(s, ".svg")) {
	case KindMaturity:
		return KindMaturity, nil
	case KindStates:
		return KindStates, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
}

// Palette is the dashboard's chart palette, dark to light.
var Palette = []string{"166e63", "a7e1c3", "d1eae6", "f5f5dc", "6b7280", "9ca3af"}

// PaletteColor returns the palette entry for index i, cycling.
func PaletteColor(i int) string {
	return "#" + Palette[i%len(Palette)]
}

func color(i int) drawing.Color {
	return drawing.ColorFromHex(Palette[i%len(Palette)])
}

// Renderer draws charts from a provider, caching the SVG output.
type Renderer struct {
	provider fixtures.Provider
	cache    *Cache
	width    int
	height   int
}

func NewRenderer(provider fixtures.Provider, cache *Cache, width, height int) *Renderer {
	return &Renderer{provider: provider, cache: cache, width: width, height: height}
}

// Render returns the SVG for one chart of one simulation.
func (r *Renderer) Render(kind Kind, id model.SimulationID) ([]byte, error) {
	key := cacheKey(kind, string(id), r.width, r.height)
	if svg, ok := r.cache.Get(key); ok {
		return svg, nil
	}

	stats, err := r.provider.Statistics(id)
	if err != nil {
		return nil, err
	}

	var svg []byte
	switch kind {
	case KindMaturity:
		svg, err = MaturityBar(stats.Maturity, r.width, r.height)
	case KindStates:
		svg, err = StatesPie(stats.States, r.width, r.height)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownChart, kind)
	}
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, svg)
	return svg, nil
}

// MaturityBar draws "Valor por Data de Vencimento".
func MaturityBar(buckets []model.MaturityBucket, width, height int) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		bars[i] = chart.Value{
			Label: b.Month,
			Value: b.Amount,
			Style: chart.Style{FillColor: color(0), StrokeColor: color(0)},
		}
	}

	bc := chart.BarChart{
		Width:      width,
		Height:     height,
		BarWidth:   width / (2 * len(buckets)),
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return format.BRLThousands(f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render maturity chart: %w", err)
	}
	return buf.Bytes(), nil
}

// StatesPie draws "Distribuição por UF" with "UF (n%)" slice labels.
func StatesPie(states []model.StateShare, width, height int) ([]byte, error) {
	if len(states) == 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, len(states))
	for i, s := range states {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%s)", s.State, format.Percent(s.Percentage)),
			Value: s.Amount,
			Style: chart.Style{FillColor: color(i), StrokeColor: drawing.ColorWhite},
		}
	}

	pc := chart.PieChart{
		Width:  width,
		Height: height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render states chart: %w", err)
	}
	return buf.Bytes(), nil
}
