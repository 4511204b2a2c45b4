// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package station

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// NormalizeOptions carry the per-run inputs of the normalizer.
type NormalizeOptions struct {
	// AssumeFahrenheit controls how untagged local temperature values are
	// interpreted. The local API does not report the station-wide unit
	// setting, so the assumption is configuration.
	AssumeFahrenheit bool

	// Now is the capture time used when the payload carries no usable timestamp.
	Now time.Time
}

// Normalize maps a raw payload into the canonical Reading. It is a pure
// function over its inputs, never fails and degrades unparseable or missing
// fields to their unset state.
func Normalize(payload Payload, opts NormalizeOptions) Reading {
	switch p := payload.(type) {
	case LocalPayload:
		return normalizeLocal(p, opts)
	case *LocalPayload:
		return normalizeLocal(*p, opts)
	case CloudPayload:
		return normalizeCloud(p, opts)
	case *CloudPayload:
		return normalizeCloud(*p, opts)
	default:
		return Reading{ObservedAt: opts.Now}
	}
}

func normalizeLocal(p LocalPayload, opts NormalizeOptions) Reading {
	reading := Reading{ObservedAt: opts.Now}
	if !p.FetchedAt.IsZero() {
		reading.ObservedAt = p.FetchedAt
	}

	for _, item := range p.CommonList {
		switch item.ID {
		case localIDTemperature:
			if !indoorSensor(item.Name) && !reading.TemperatureC.IsSet() {
				reading.TemperatureC = localTemperature(item, opts)
			}
		case localIDFeelsLike:
			if !reading.FeelsLikeC.IsSet() {
				reading.FeelsLikeC = localTemperature(item, opts)
			}
		case localIDHumidity:
			if !indoorSensor(item.Name) && !reading.HumidityPct.IsSet() {
				if v, _, ok := parseMeasure(item.Val, item.Unit); ok {
					reading.HumidityPct = Some(v)
				}
			}
		case localIDPressure:
			if v, unit, ok := parseMeasure(item.Val, item.Unit); ok {
				reading.PressureHPa = Some(pressureToHPa(v, unit))
			}
		case localIDWindSpeed:
			if v, unit, ok := parseMeasure(item.Val, item.Unit); ok {
				reading.WindSpeedKmh = Some(windToKmh(v, unit))
			}
		case localIDWindDirection:
			if v, _, ok := parseMeasure(item.Val, item.Unit); ok {
				reading.WindDir = SomeDirection(CompassFromDegrees(v))
			}
		case localIDRainDaily:
			if v, unit, ok := parseMeasure(item.Val, item.Unit); ok {
				reading.RainTodayMm = Some(rainToMm(v, unit))
			}
		case localIDUVIndex:
			if v, _, ok := parseMeasure(item.Val, item.Unit); ok {
				reading.UVIndex = Some(v)
			}
		}
	}

	return reading
}

func normalizeCloud(p CloudPayload, opts NormalizeOptions) Reading {
	reading := Reading{ObservedAt: opts.Now}
	if unix, err := strconv.ParseInt(strings.TrimSpace(p.Time), 10, 64); err == nil && unix > 0 {
		reading.ObservedAt = time.Unix(unix, 0)
	}

	if v, unit, ok := parseMeasure(p.Data.Outdoor.Temperature.Value, p.Data.Outdoor.Temperature.Unit); ok {
		reading.TemperatureC = Some(temperatureToCelsius(v, unit, false))
	}
	if v, unit, ok := parseMeasure(p.Data.Outdoor.FeelsLike.Value, p.Data.Outdoor.FeelsLike.Unit); ok {
		reading.FeelsLikeC = Some(temperatureToCelsius(v, unit, false))
	}
	if v, _, ok := parseMeasure(p.Data.Outdoor.Humidity.Value, p.Data.Outdoor.Humidity.Unit); ok {
		reading.HumidityPct = Some(v)
	}
	if v, unit, ok := parseMeasure(p.Data.Pressure.Relative.Value, p.Data.Pressure.Relative.Unit); ok {
		reading.PressureHPa = Some(pressureToHPa(v, unit))
	}
	if v, unit, ok := parseMeasure(p.Data.Wind.WindSpeed.Value, p.Data.Wind.WindSpeed.Unit); ok {
		reading.WindSpeedKmh = Some(windToKmh(v, unit))
	}
	if v, _, ok := parseMeasure(p.Data.Wind.WindDirection.Value, p.Data.Wind.WindDirection.Unit); ok {
		reading.WindDir = SomeDirection(CompassFromDegrees(v))
	}
	if v, unit, ok := parseMeasure(p.Data.Rainfall.Daily.Value, p.Data.Rainfall.Daily.Unit); ok {
		reading.RainTodayMm = Some(rainToMm(v, unit))
	}
	if v, _, ok := parseMeasure(p.Data.SolarAndUVI.UVI.Value, p.Data.SolarAndUVI.UVI.Unit); ok {
		reading.UVIndex = Some(v)
	}

	return reading
}

func localTemperature(item LocalItem, opts NormalizeOptions) Optional {
	v, unit, ok := parseMeasure(item.Val, item.Unit)
	if !ok {
		return None()
	}
	return Some(temperatureToCelsius(v, unit, opts.AssumeFahrenheit))
}

func indoorSensor(name string) bool {
	return strings.Contains(strings.ToLower(name), "indoor")
}

// parseMeasure parses a raw measurement string. The unit tag takes precedence;
// without one, a unit suffix embedded in the value (e.g. "21.3F") is used.
// Values that do not start with a finite number are rejected.
func parseMeasure(val, unitTag string) (float64, string, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, "", false
	}

	end := 0
	for end < len(val) {
		c := val[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}

	num, err := strconv.ParseFloat(val[:end], 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
		return 0, "", false
	}

	unit := strings.TrimSpace(unitTag)
	if unit == "" {
		unit = strings.TrimSpace(val[end:])
	}
	return num, unit, true
}

func temperatureToCelsius(v float64, unit string, assumeFahrenheit bool) float64 {
	switch normalizeUnit(unit) {
	case "f":
		return fahrenheitToCelsius(v)
	case "c", "":
		if unit == "" && assumeFahrenheit {
			return fahrenheitToCelsius(v)
		}
		return v
	default:
		return v
	}
}

func fahrenheitToCelsius(v float64) float64 {
	return (v - 32) * 5 / 9
}

func pressureToHPa(v float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "inhg":
		return v * 33.8639
	case "mmhg":
		return v * 1.33322
	default:
		return v
	}
}

func windToKmh(v float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "mph":
		return v * 1.609344
	case "m/s", "ms":
		return v * 3.6
	case "knots", "kn":
		return v * 1.852
	default:
		return v
	}
}

func rainToMm(v float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "in", "inch":
		return v * 25.4
	default:
		return v
	}
}

func normalizeUnit(unit string) string {
	unit = strings.ToLower(strings.TrimSpace(unit))
	unit = strings.TrimPrefix(unit, "°")
	switch unit {
	case "℉":
		return "f"
	case "℃":
		return "c"
	}
	return unit
}
