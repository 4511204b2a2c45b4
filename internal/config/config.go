// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package config handles the dashboard's configuration loading and validation.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const configEnv = "EINKDASHBOARD"

// Source modes.
const (
	ModeLocal = "local"
	ModeCloud = "cloud"
)

// Temperature unit assumptions for untagged local station values.
const (
	UnitCelsius    = "celsius"
	UnitFahrenheit = "fahrenheit"
)

// Config represents the application's configuration structure.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Source struct {
		// Allowed values: local, cloud
		Mode    string `fig:"mode" default:"local"`
		LocalIP string `fig:"local_ip"`
		// Unit assumed for local station values that carry no unit tag.
		// Allowed values: celsius, fahrenheit
		LocalTemperatureUnit string        `fig:"local_temperature_unit" default:"celsius"`
		APIKey               string        `fig:"api_key"`
		ApplicationKey       string        `fig:"application_key"`
		MACAddress           string        `fig:"mac_address"`
		Timeout              time.Duration `fig:"timeout" default:"10s"`
	} `fig:"source"`

	Output struct {
		Path string `fig:"path" default:"data/weather_display.png"`
	} `fig:"output"`

	Panel struct {
		Enabled bool   `fig:"enabled"`
		Command string `fig:"command"`
	} `fig:"panel"`

	Fonts struct {
		Bold    []string `fig:"bold"`
		Regular []string `fig:"regular"`
	} `fig:"fonts"`

	Station struct {
		Latitude  float64 `fig:"latitude"`
		Longitude float64 `fig:"longitude"`
	} `fig:"station"`

	Intervals struct {
		// 0 disables the internal schedule (one-shot mode for external cron).
		Refresh time.Duration `fig:"refresh" default:"0s"`
	} `fig:"intervals"`
}

// NewFromFile loads the configuration from the given file and validates it.
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

// New loads the configuration from the environment only and validates it.
func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.Validate()
}

// Validate checks the configuration for consistency and fills derived defaults.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Source.Mode) {
	case ModeLocal:
		c.Source.Mode = ModeLocal
		if c.Source.LocalIP == "" {
			return fmt.Errorf("local source mode requires a station IP address")
		}
	case ModeCloud:
		c.Source.Mode = ModeCloud
		if c.Source.APIKey == "" || c.Source.ApplicationKey == "" || c.Source.MACAddress == "" {
			return fmt.Errorf("cloud source mode requires api_key, application_key and mac_address")
		}
	default:
		return fmt.Errorf("invalid source mode: %s", c.Source.Mode)
	}

	unit := strings.ToLower(c.Source.LocalTemperatureUnit)
	if unit != UnitCelsius && unit != UnitFahrenheit {
		return fmt.Errorf("invalid local temperature unit: %s", c.Source.LocalTemperatureUnit)
	}
	c.Source.LocalTemperatureUnit = unit

	if c.Source.Timeout <= 0 {
		return fmt.Errorf("invalid source timeout: %s", c.Source.Timeout)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Panel.Enabled && c.Panel.Command == "" {
		return fmt.Errorf("panel output requires a driver command")
	}
	if (c.Station.Latitude == 0) != (c.Station.Longitude == 0) {
		return fmt.Errorf("station latitude and longitude must be configured together")
	}
	if c.Intervals.Refresh < 0 {
		return fmt.Errorf("invalid refresh interval: %s", c.Intervals.Refresh)
	}

	if len(c.Fonts.Bold) == 0 {
		c.Fonts.Bold = DefaultBoldFonts()
	}
	if len(c.Fonts.Regular) == 0 {
		c.Fonts.Regular = DefaultRegularFonts()
	}

	return nil
}

// HasCoordinates reports whether station coordinates are configured.
func (c *Config) HasCoordinates() bool {
	return c.Station.Latitude != 0 || c.Station.Longitude != 0
}

// DefaultBoldFonts returns the default search paths for the bold typeface.
func DefaultBoldFonts() []string {
	return []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	}
}

// DefaultRegularFonts returns the default search paths for the regular typeface.
func DefaultRegularFonts() []string {
	return []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	}
}
