// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package layout

import "github.com/nakoukal/eink-dashboard/internal/station"

// The dashboard renders a single fixed locale (Czech). All display strings
// come from these tables; there is no runtime translation.

var czechWeekdays = [...]string{
	"Neděle", "Pondělí", "Úterý", "Středa", "Čtvrtek", "Pátek", "Sobota",
}

// czechMonths holds genitive month names as used in Czech dates.
var czechMonths = [...]string{
	"ledna", "února", "března", "dubna", "května", "června",
	"července", "srpna", "září", "října", "listopadu", "prosince",
}

// compassAbbrev maps compass points to their Czech abbreviations.
var compassAbbrev = map[station.CompassPoint]string{
	station.North:     "S",
	station.NorthEast: "SV",
	station.East:      "V",
	station.SouthEast: "JV",
	station.South:     "J",
	station.SouthWest: "JZ",
	station.West:      "Z",
	station.NorthWest: "SZ",
}

// moonPhaseNames maps moon phase names to their Czech display names.
var moonPhaseNames = map[string]string{
	"New Moon":        "Nov",
	"Waxing Crescent": "Dorůstající srpek",
	"First Quarter":   "První čtvrť",
	"Waxing Gibbous":  "Dorůstající měsíc",
	"Full Moon":       "Úplněk",
	"Waning Gibbous":  "Couvající měsíc",
	"Third Quarter":   "Poslední čtvrť",
	"Waning Crescent": "Couvající srpek",
}

// Fixed labels of the dashboard regions.
const (
	labelFeelsLike = "Pocitově"
	labelHumidity  = "Vlhkost"
	labelPressure  = "Tlak"
	labelUVIndex   = "UV Index"
	labelWind      = "Vítr"
	labelRain      = "Srážky (dnes)"
	labelUpdated   = "Aktualizováno"
	labelSunrise   = "Východ"
	labelSunset    = "Západ"
)
