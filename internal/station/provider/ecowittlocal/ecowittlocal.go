// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package ecowittlocal fetches live data directly from the weather station's
// local HTTP API.
package ecowittlocal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nakoukal/eink-dashboard/internal/http"
	"github.com/nakoukal/eink-dashboard/internal/logger"
	"github.com/nakoukal/eink-dashboard/internal/station"
)

const (
	name         = "ecowitt-local"
	livedataPath = "/get_livedata_info"
)

// Source queries the station's local livedata endpoint.
type Source struct {
	endpoint string
	timeout  time.Duration
	log      *logger.Logger
	http     *http.Client
}

// New returns a local API source for the station at the given IP address.
func New(client *http.Client, log *logger.Logger, ip string, timeout time.Duration) (*Source, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if ip == "" {
		return nil, fmt.Errorf("station IP address is required")
	}
	if timeout <= 0 {
		timeout = http.DefaultTimeout
	}
	return &Source{
		endpoint: "http://" + ip + livedataPath,
		timeout:  timeout,
		log:      log,
		http:     client,
	}, nil
}

// Name returns the identifier of this source.
func (s *Source) Name() string {
	return name
}

// Fetch performs a single request against the local livedata endpoint. It
// never retries; a failed attempt surfaces immediately.
func (s *Source) Fetch(ctx context.Context) (station.Payload, error) {
	payload := new(station.LocalPayload)
	code, err := s.http.GetWithTimeout(ctx, s.endpoint, payload, nil, s.timeout)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return nil, fmt.Errorf("local station API timed out after %s: %w", s.timeout,
				station.ErrSourceTimeout)
		case code != 0:
			// The request completed but the body was not decodable JSON.
			return nil, fmt.Errorf("local station API returned an undecodable body: %w",
				station.ErrSourceMalformed)
		default:
			return nil, fmt.Errorf("failed to reach local station API: %w", station.ErrSourceUnreachable)
		}
	}
	if code < 200 || code >= 300 {
		return nil, fmt.Errorf("local station API returned status %d: %w", code, station.ErrSourceMalformed)
	}

	payload.FetchedAt = time.Now()
	return payload, nil
}
