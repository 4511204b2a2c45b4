// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package station defines the canonical weather reading, the raw payload
// variants delivered by the supported station APIs and the normalization
// between the two.
package station

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSourceUnreachable indicates the station API could not be reached at all.
	ErrSourceUnreachable = errors.New("weather source is unreachable")
	// ErrSourceTimeout indicates the station API did not answer within the configured timeout.
	ErrSourceTimeout = errors.New("weather source timed out")
	// ErrSourceMalformed indicates the station API answered with something that is not a usable payload.
	ErrSourceMalformed = errors.New("weather source returned a malformed response")
)

// Source is implemented by each station API backend. A Source performs exactly
// one fetch attempt per call and never retries on its own.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Payload, error)
}

// Payload is the closed set of raw API response shapes. Both variants are
// short-lived carriers between fetch and normalization.
type Payload interface {
	payloadVariant()
}

// Optional holds a float64 value together with its initialization state.
// An unset Optional is the explicit marker for a missing measurement; no
// sentinel numbers are ever stored.
type Optional struct {
	value float64
	isset bool
}

// Some returns an Optional initialized with value.
func Some(value float64) Optional {
	return Optional{value: value, isset: true}
}

// None returns an unset Optional.
func None() Optional {
	return Optional{}
}

// Value retrieves the stored value. It is only meaningful if IsSet is true.
func (o Optional) Value() float64 {
	return o.value
}

// IsSet reports whether the Optional holds a measurement.
func (o Optional) IsSet() bool {
	return o.isset
}

// String returns the value or a placeholder notice for unset Optionals.
func (o Optional) String() string {
	if !o.isset {
		return "not reported by station"
	}
	return fmt.Sprint(o.value)
}

// CompassPoint is an 8-point compass direction.
type CompassPoint int

const (
	North CompassPoint = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var compassNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation for the point.
func (c CompassPoint) String() string {
	if c < North || c > NorthWest {
		return "?"
	}
	return compassNames[c]
}

// CompassFromDegrees buckets a wind direction in degrees into an 8-point
// compass direction.
func CompassFromDegrees(degrees float64) CompassPoint {
	degrees = degrees - 360*float64(int(degrees/360))
	if degrees < 0 {
		degrees += 360
	}
	idx := int(degrees/45+0.5) % 8
	return CompassPoint(idx)
}

// Direction holds an optional compass direction.
type Direction struct {
	point CompassPoint
	isset bool
}

// SomeDirection returns a set Direction.
func SomeDirection(p CompassPoint) Direction {
	return Direction{point: p, isset: true}
}

// Point retrieves the stored compass point. Only meaningful if IsSet is true.
func (d Direction) Point() CompassPoint {
	return d.point
}

// IsSet reports whether the Direction holds a value.
func (d Direction) IsSet() bool {
	return d.isset
}

// Reading is one canonical snapshot of weather measurements. All measurement
// fields are optional; ObservedAt is always set.
type Reading struct {
	TemperatureC Optional
	FeelsLikeC   Optional
	HumidityPct  Optional
	PressureHPa  Optional
	WindSpeedKmh Optional
	WindDir      Direction
	RainTodayMm  Optional
	UVIndex      Optional
	ObservedAt   time.Time
}
