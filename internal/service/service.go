// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package service wires the station source, layout, renderer and output
// stages into the refresh pipeline and runs it either once or on a schedule.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/nathan-osman/go-sunrise"
	"github.com/wneessen/go-moonphase"

	"github.com/nakoukal/eink-dashboard/internal/config"
	"github.com/nakoukal/eink-dashboard/internal/fontres"
	"github.com/nakoukal/eink-dashboard/internal/http"
	"github.com/nakoukal/eink-dashboard/internal/layout"
	"github.com/nakoukal/eink-dashboard/internal/logger"
	"github.com/nakoukal/eink-dashboard/internal/output"
	"github.com/nakoukal/eink-dashboard/internal/panel"
	"github.com/nakoukal/eink-dashboard/internal/render"
	"github.com/nakoukal/eink-dashboard/internal/station"
	"github.com/nakoukal/eink-dashboard/internal/station/provider/ecowittcloud"
	"github.com/nakoukal/eink-dashboard/internal/station/provider/ecowittlocal"
)

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	source    station.Source
	renderer  *render.Renderer
	sink      *output.Sink
	driver    panel.Driver
	scheduler gocron.Scheduler
}

// New assembles the pipeline from the given configuration.
func New(conf *config.Config, log *logger.Logger) (*Service, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	source, err := createSource(conf, log)
	if err != nil {
		return nil, err
	}

	fonts := fontres.New(log, conf.Fonts.Bold, conf.Fonts.Regular)

	var driver panel.Driver
	if conf.Panel.Enabled {
		cmdDriver, err := panel.NewCommandDriver(conf.Panel.Command, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create panel driver: %w", err)
		}
		driver = cmdDriver
	}

	service := &Service{
		config:    conf,
		logger:    log,
		source:    source,
		renderer:  render.New(fonts, log),
		sink:      output.New(conf.Output.Path, log),
		driver:    driver,
		scheduler: scheduler,
	}
	return service, nil
}

// createSource selects the station source implementation for the configured
// mode.
func createSource(conf *config.Config, log *logger.Logger) (station.Source, error) {
	httpClient := http.New(log)
	switch conf.Source.Mode {
	case config.ModeLocal:
		return ecowittlocal.New(httpClient, log, conf.Source.LocalIP, conf.Source.Timeout)
	case config.ModeCloud:
		return ecowittcloud.New(httpClient, log, conf.Source.APIKey, conf.Source.ApplicationKey,
			conf.Source.MACAddress, conf.Source.Timeout)
	default:
		return nil, fmt.Errorf("unknown source mode: %q", conf.Source.Mode)
	}
}

// Run either executes a single refresh or, when a refresh interval is
// configured, keeps refreshing on schedule until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.config.Intervals.Refresh <= 0 {
		return s.RunOnce(ctx)
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.config.Intervals.Refresh),
		gocron.NewTask(s.refresh),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithName("frame_refresh_job"),
	)
	if err != nil {
		return fmt.Errorf("failed to create frame_refresh_job: %w", err)
	}
	s.scheduler.Start()

	<-ctx.Done()
	return s.scheduler.Shutdown()
}

// RunOnce runs a single refresh cycle: fetch, normalize, compose, render,
// write the output file and, if enabled, push the frame to the panel. A
// fetch failure aborts the cycle before anything is written, so the previous
// frame stays on disk and on the panel.
func (s *Service) RunOnce(ctx context.Context) error {
	payload, err := s.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch station data from %s: %w", s.source.Name(), err)
	}

	now := time.Now()
	reading := station.Normalize(payload, station.NormalizeOptions{
		AssumeFahrenheit: s.config.Source.LocalTemperatureUnit == config.UnitFahrenheit,
		Now:              now,
	})
	s.logger.Debug("station data normalized", "source", s.source.Name(),
		"temperature", reading.TemperatureC, "humidity", reading.HumidityPct)

	geom := layout.DefaultGeometry()
	frame := s.renderer.Render(layout.Compose(reading, s.astro(now), geom), geom)

	if err := s.sink.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	s.logger.Info("frame updated", "path", s.sink.Path())

	if s.driver != nil {
		if err := panel.Show(s.driver, frame.PackedBuffer(), s.logger); err != nil {
			return fmt.Errorf("failed to refresh panel: %w", err)
		}
		s.logger.Info("panel refreshed")
	}
	return nil
}

// refresh adapts RunOnce for the scheduler; failures of a single cycle are
// logged and the schedule keeps going.
func (s *Service) refresh(ctx context.Context) {
	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("refresh cycle failed", logger.Err(err))
	}
}

// astro computes the footer extras. The whole astro row is tied to
// configured coordinates so its presence never depends on fetched data.
func (s *Service) astro(now time.Time) layout.Astro {
	if !s.config.HasCoordinates() {
		return layout.Astro{}
	}
	rise, set := sunrise.SunriseSunset(s.config.Station.Latitude,
		s.config.Station.Longitude, now.Year(), now.Month(), now.Day())
	return layout.Astro{
		HasSun:    true,
		Sunrise:   rise.Local(),
		Sunset:    set.Local(),
		MoonPhase: moonphase.New(now).PhaseName(),
	}
}
