// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package station

import "time"

// Well-known sensor IDs used in the local livedata response.
const (
	localIDTemperature   = "0x02"
	localIDFeelsLike     = "0x03"
	localIDUVIndex       = "0x05"
	localIDPressure      = "0x06"
	localIDHumidity      = "0x07"
	localIDWindSpeed     = "0x0A"
	localIDWindDirection = "0x0B"
	localIDRainDaily     = "0x0E"
)

// LocalItem is a single sensor entry from the local livedata response. Val is
// a string that may carry an embedded unit suffix (e.g. "21.3F"); Unit, when
// present, takes precedence over any suffix.
type LocalItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Val  string `json:"val"`
	Unit string `json:"unit"`
}

// LocalPayload is the raw response of the station's local livedata endpoint.
type LocalPayload struct {
	CommonList []LocalItem `json:"common_list"`

	// FetchedAt is the capture time recorded by the source adapter. The local
	// endpoint carries no timestamp of its own.
	FetchedAt time.Time `json:"-"`
}

func (LocalPayload) payloadVariant() {}

// CloudMetric is a single measurement in the hosted API response.
type CloudMetric struct {
	Time  string `json:"time"`
	Unit  string `json:"unit"`
	Value string `json:"value"`
}

// CloudPayload is the raw response envelope of the hosted real_time endpoint.
type CloudPayload struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Time string `json:"time"`
	Data struct {
		Outdoor struct {
			Temperature CloudMetric `json:"temperature"`
			FeelsLike   CloudMetric `json:"feels_like"`
			Humidity    CloudMetric `json:"humidity"`
		} `json:"outdoor"`
		Wind struct {
			WindSpeed     CloudMetric `json:"wind_speed"`
			WindDirection CloudMetric `json:"wind_direction"`
		} `json:"wind"`
		Pressure struct {
			Relative CloudMetric `json:"relative"`
		} `json:"pressure"`
		Rainfall struct {
			Daily CloudMetric `json:"daily"`
		} `json:"rainfall"`
		SolarAndUVI struct {
			UVI CloudMetric `json:"uvi"`
		} `json:"solar_and_uvi"`
	} `json:"data"`
}

func (CloudPayload) payloadVariant() {}
