// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package ecowittcloud fetches real-time station data from the hosted
// ecowitt.net API.
package ecowittcloud

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/nakoukal/eink-dashboard/internal/http"
	"github.com/nakoukal/eink-dashboard/internal/logger"
	"github.com/nakoukal/eink-dashboard/internal/station"
)

const (
	name        = "ecowitt-cloud"
	apiEndpoint = "https://api.ecowitt.net/api/v3/device/real_time"
)

// Source queries the hosted real_time endpoint.
type Source struct {
	apiKey         string
	applicationKey string
	mac            string
	timeout        time.Duration
	log            *logger.Logger
	http           *http.Client
}

// New returns a cloud API source for the device identified by mac.
func New(client *http.Client, log *logger.Logger, apiKey, applicationKey, mac string,
	timeout time.Duration,
) (*Source, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if apiKey == "" || applicationKey == "" || mac == "" {
		return nil, fmt.Errorf("api key, application key and device MAC are required")
	}
	if timeout <= 0 {
		timeout = http.DefaultTimeout
	}
	return &Source{
		apiKey:         apiKey,
		applicationKey: applicationKey,
		mac:            mac,
		timeout:        timeout,
		log:            log,
		http:           client,
	}, nil
}

// Name returns the identifier of this source.
func (s *Source) Name() string {
	return name
}

// Fetch performs a single request against the hosted API. It never retries;
// a failed attempt surfaces immediately.
func (s *Source) Fetch(ctx context.Context) (station.Payload, error) {
	query := url.Values{}
	query.Set("api_key", s.apiKey)
	query.Set("application_key", s.applicationKey)
	query.Set("mac", s.mac)
	query.Set("call_back", "all")

	payload := new(station.CloudPayload)
	code, err := s.http.GetWithTimeout(ctx, apiEndpoint, payload, query, s.timeout)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return nil, fmt.Errorf("hosted station API timed out after %s: %w", s.timeout,
				station.ErrSourceTimeout)
		case code != 0:
			return nil, fmt.Errorf("hosted station API returned an undecodable body: %w",
				station.ErrSourceMalformed)
		default:
			return nil, fmt.Errorf("failed to reach hosted station API: %w", station.ErrSourceUnreachable)
		}
	}
	if code < 200 || code >= 300 {
		return nil, fmt.Errorf("hosted station API returned status %d: %w", code, station.ErrSourceMalformed)
	}
	if payload.Code != 0 {
		return nil, fmt.Errorf("hosted station API reported error %d (%s): %w", payload.Code,
			payload.Msg, station.ErrSourceMalformed)
	}

	return payload, nil
}
