// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package layout

import (
	"reflect"
	"testing"
	"time"

	"github.com/nakoukal/eink-dashboard/internal/station"
)

var observed = time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)

func testReading() station.Reading {
	return station.Reading{
		TemperatureC: station.Some(22.5),
		FeelsLikeC:   station.Some(21.8),
		HumidityPct:  station.Some(65),
		PressureHPa:  station.Some(1013.2),
		WindSpeedKmh: station.Some(5.5),
		WindDir:      station.SomeDirection(station.South),
		RainTodayMm:  station.Some(2.5),
		UVIndex:      station.Some(3.0),
		ObservedAt:   observed,
	}
}

func findText(prims []Primitive, text string) (TextRun, bool) {
	for _, p := range prims {
		if run, ok := p.(TextRun); ok && run.Text == text {
			return run, true
		}
	}
	return TextRun{}, false
}

func TestCompose(t *testing.T) {
	geom := DefaultGeometry()

	t.Run("identical inputs produce identical sequences", func(t *testing.T) {
		astro := Astro{MoonPhase: "Full Moon"}
		first := Compose(testReading(), astro, geom)
		second := Compose(testReading(), astro, geom)
		if !reflect.DeepEqual(first, second) {
			t.Error("expected byte-identical primitive sequences")
		}
	})
	t.Run("primary temperature renders at its fixed position", func(t *testing.T) {
		prims := Compose(testReading(), Astro{}, geom)
		run, ok := findText(prims, "22.5°C")
		if !ok {
			t.Fatal("expected primary temperature text run")
		}
		if run.X != 30 || run.Y != 120 {
			t.Errorf("expected temperature at (30,120), got (%d,%d)", run.X, run.Y)
		}
		if run.Size != 100 {
			t.Errorf("expected temperature size 100, got %d", run.Size)
		}
	})
	t.Run("metrics column renders values at fixed coordinates", func(t *testing.T) {
		prims := Compose(testReading(), Astro{}, geom)
		tests := []struct {
			text string
			x, y int
		}{
			{"65%", 480, 115},
			{"1013.2 hPa", 480, 205},
			{"3.0", 480, 295},
		}
		for _, tc := range tests {
			run, ok := findText(prims, tc.text)
			if !ok {
				t.Fatalf("expected metrics text run %q", tc.text)
			}
			if run.X != tc.x || run.Y != tc.y {
				t.Errorf("expected %q at (%d,%d), got (%d,%d)", tc.text, tc.x, tc.y, run.X, run.Y)
			}
		}
	})
	t.Run("wind text carries the compass abbreviation", func(t *testing.T) {
		prims := Compose(testReading(), Astro{}, geom)
		if _, ok := findText(prims, "5.5 km/h J"); !ok {
			t.Error("expected wind text run with Czech compass abbreviation")
		}
	})
	t.Run("header formats the Czech date", func(t *testing.T) {
		prims := Compose(testReading(), Astro{}, geom)
		if _, ok := findText(prims, "Sobota, 29. srpna 2026"); !ok {
			t.Error("expected Czech header date")
		}
	})
	t.Run("absent fields render the placeholder without shifting regions", func(t *testing.T) {
		reading := testReading()
		reading.UVIndex = station.None()
		prims := Compose(reading, Astro{}, geom)

		run, ok := findText(prims, Placeholder)
		if !ok {
			t.Fatal("expected placeholder text run for the missing UV index")
		}
		if run.X != 480 || run.Y != 295 {
			t.Errorf("expected placeholder at (480,295), got (%d,%d)", run.X, run.Y)
		}

		full := Compose(testReading(), Astro{}, geom)
		if len(full) != len(prims) {
			t.Fatalf("expected same number of primitives, got %d and %d", len(full), len(prims))
		}
		for i := range full {
			fullRun, okFull := full[i].(TextRun)
			partRun, okPart := prims[i].(TextRun)
			if okFull != okPart {
				t.Fatalf("expected primitive %d to keep its kind", i)
			}
			if okFull && (fullRun.X != partRun.X || fullRun.Y != partRun.Y) {
				t.Errorf("expected primitive %d to keep its position, got (%d,%d) vs (%d,%d)",
					i, fullRun.X, fullRun.Y, partRun.X, partRun.Y)
			}
		}
	})
	t.Run("absent wind direction drops only the compass suffix", func(t *testing.T) {
		reading := testReading()
		reading.WindDir = station.Direction{}
		prims := Compose(reading, Astro{}, geom)
		if _, ok := findText(prims, "5.5 km/h"); !ok {
			t.Error("expected wind text run without compass abbreviation")
		}
	})
	t.Run("astro row renders sunrise, sunset and moon phase", func(t *testing.T) {
		astro := Astro{
			HasSun:    true,
			Sunrise:   time.Date(2026, 8, 29, 6, 12, 0, 0, time.UTC),
			Sunset:    time.Date(2026, 8, 29, 19, 45, 0, 0, time.UTC),
			MoonPhase: "Full Moon",
		}
		prims := Compose(testReading(), astro, geom)
		run, ok := findText(prims, "Východ: 06:12   Západ: 19:45   Úplněk")
		if !ok {
			t.Fatal("expected astro footer text run")
		}
		if run.X != 20 || run.Y != 450 {
			t.Errorf("expected astro row at (20,450), got (%d,%d)", run.X, run.Y)
		}
	})
	t.Run("footer timestamp is right-aligned to the canvas edge", func(t *testing.T) {
		prims := Compose(testReading(), Astro{}, geom)
		run, ok := findText(prims, "Aktualizováno: 14:30:05")
		if !ok {
			t.Fatal("expected footer timestamp text run")
		}
		if run.Align != AlignRight || run.X != 780 {
			t.Errorf("expected right-aligned run anchored at 780, got align %d at %d", run.Align, run.X)
		}
	})
}
