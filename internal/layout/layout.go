// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package layout maps a weather reading onto an ordered sequence of draw
// primitives at fixed canvas coordinates.
package layout

import (
	"fmt"
	"time"

	"github.com/nakoukal/eink-dashboard/internal/fontres"
	"github.com/nakoukal/eink-dashboard/internal/station"
)

// Placeholder is rendered in place of any measurement the station did not
// report. Region positions never shift based on data presence.
const Placeholder = "--"

// Geometry describes the canvas dimensions in pixels.
type Geometry struct {
	Width  int
	Height int
}

// DefaultGeometry is the panel geometry of the 7.5" e-paper display.
func DefaultGeometry() Geometry {
	return Geometry{Width: 800, Height: 480}
}

// Align selects the horizontal anchoring of a text run.
type Align int

const (
	// AlignLeft anchors the run's left edge at X.
	AlignLeft Align = iota
	// AlignRight anchors the run's right edge at X.
	AlignRight
)

// Primitive is the closed set of drawing operations the renderer executes.
type Primitive interface {
	primitive()
}

// TextRun places a single line of text. X/Y is the top-left anchor, or the
// top-right anchor for right-aligned runs.
type TextRun struct {
	X      int
	Y      int
	Text   string
	Size   int
	Weight fontres.Weight
	Align  Align
}

func (TextRun) primitive() {}

// Rule draws a straight line of the given thickness.
type Rule struct {
	X0        int
	Y0        int
	X1        int
	Y1        int
	Thickness int
}

func (Rule) primitive() {}

// Astro carries the computed astronomical extras for the footer band.
type Astro struct {
	HasSun    bool
	Sunrise   time.Time
	Sunset    time.Time
	MoonPhase string
}

// Fixed text sizes per region.
const (
	sizeDate        = 24
	sizeTime        = 28
	sizeTemperature = 100
	sizeFeelsLike   = 18
	sizeMetricLabel = 20
	sizeMetricValue = 36
	sizeBandLabel   = 18
	sizeBandValue   = 26
	sizeFooter      = 16
)

// Fixed region coordinates.
const (
	margin = 20

	headerDateY = 20
	headerTimeY = 15
	headerRuleY = 65

	temperatureX = 30
	temperatureY = 120
	feelsLikeY   = 245

	metricsX           = 480
	metricsStartY      = 90
	metricsStride      = 90
	metricsValueOffset = 25

	bandRuleY  = 345
	bandLabelY = 360
	bandValueY = 385
	windX      = 40
	rainX      = 420

	footerY = 450
)

// Compose maps a reading plus canvas geometry into the ordered primitive
// sequence of the dashboard. Identical inputs always produce an identical
// sequence.
func Compose(reading station.Reading, astro Astro, geom Geometry) []Primitive {
	prims := make([]Primitive, 0, 24)
	right := geom.Width - margin

	// Header band: date left, time right, separator rule.
	prims = append(prims,
		TextRun{X: margin, Y: headerDateY, Text: czechDate(reading.ObservedAt), Size: sizeDate},
		TextRun{X: right, Y: headerTimeY, Text: reading.ObservedAt.Format("15:04"), Size: sizeTime,
			Weight: fontres.WeightBold, Align: AlignRight},
		Rule{X0: margin, Y0: headerRuleY, X1: right, Y1: headerRuleY, Thickness: 2},
	)

	// Primary temperature block with feels-like subtext.
	prims = append(prims,
		TextRun{X: temperatureX, Y: temperatureY, Text: formatValue(reading.TemperatureC, "%.1f", "°C"),
			Size: sizeTemperature, Weight: fontres.WeightBold},
		TextRun{X: temperatureX, Y: feelsLikeY,
			Text: labelFeelsLike + ": " + formatValue(reading.FeelsLikeC, "%.1f", "°C"),
			Size: sizeFeelsLike},
	)

	// Metrics column: humidity, pressure, UV index.
	metrics := []struct {
		label string
		value string
	}{
		{labelHumidity, formatValue(reading.HumidityPct, "%.0f", "%")},
		{labelPressure, formatValue(reading.PressureHPa, "%.1f", " hPa")},
		{labelUVIndex, formatValue(reading.UVIndex, "%.1f", "")},
	}
	for i, metric := range metrics {
		y := metricsStartY + i*metricsStride
		prims = append(prims,
			TextRun{X: metricsX, Y: y, Text: metric.label, Size: sizeMetricLabel},
			TextRun{X: metricsX, Y: y + metricsValueOffset, Text: metric.value,
				Size: sizeMetricValue, Weight: fontres.WeightBold},
		)
	}

	// Wind and precipitation band.
	prims = append(prims,
		Rule{X0: margin, Y0: bandRuleY, X1: right, Y1: bandRuleY, Thickness: 2},
		TextRun{X: windX, Y: bandLabelY, Text: labelWind, Size: sizeBandLabel},
		TextRun{X: windX, Y: bandValueY, Text: windText(reading), Size: sizeBandValue,
			Weight: fontres.WeightBold},
		TextRun{X: rainX, Y: bandLabelY, Text: labelRain, Size: sizeBandLabel},
		TextRun{X: rainX, Y: bandValueY, Text: formatValue(reading.RainTodayMm, "%.1f", " mm"),
			Size: sizeBandValue, Weight: fontres.WeightBold},
	)

	// Footer band: astro row left, last-updated right.
	if astroText := astroText(astro); astroText != "" {
		prims = append(prims, TextRun{X: margin, Y: footerY, Text: astroText, Size: sizeFooter})
	}
	prims = append(prims, TextRun{X: right, Y: footerY,
		Text: labelUpdated + ": " + reading.ObservedAt.Format("15:04:05"),
		Size: sizeFooter, Align: AlignRight})

	return prims
}

// formatValue renders an optional measurement with fixed precision and unit
// suffix, substituting the placeholder when the value is unset.
func formatValue(v station.Optional, format, unit string) string {
	if !v.IsSet() {
		return Placeholder + unit
	}
	return fmt.Sprintf(format, v.Value()) + unit
}

// windText renders wind speed with the Czech compass abbreviation appended
// when a direction is known.
func windText(reading station.Reading) string {
	text := formatValue(reading.WindSpeedKmh, "%.1f", " km/h")
	if reading.WindDir.IsSet() {
		text += " " + compassAbbrev[reading.WindDir.Point()]
	}
	return text
}

// astroText renders the sunrise/sunset/moon phase row. It is empty only when
// no astro data is configured at all, which is a configuration decision, not
// a data-dependent one.
func astroText(astro Astro) string {
	text := ""
	if astro.HasSun {
		text = fmt.Sprintf("%s: %s   %s: %s", labelSunrise, astro.Sunrise.Format("15:04"),
			labelSunset, astro.Sunset.Format("15:04"))
	}
	if astro.MoonPhase != "" {
		phase := astro.MoonPhase
		if name, ok := moonPhaseNames[phase]; ok {
			phase = name
		}
		if text != "" {
			text += "   "
		}
		text += phase
	}
	return text
}

// czechDate formats a date like the original dashboard: "Pátek, 29. srpna 2026".
func czechDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d. %s %d", czechWeekdays[t.Weekday()], t.Day(),
		czechMonths[t.Month()-1], t.Year())
}
