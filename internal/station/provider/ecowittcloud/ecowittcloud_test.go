// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package ecowittcloud

import (
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nakoukal/eink-dashboard/internal/http"
	"github.com/nakoukal/eink-dashboard/internal/logger"
	"github.com/nakoukal/eink-dashboard/internal/station"
	"github.com/nakoukal/eink-dashboard/internal/testhelper"
)

const testFile = "../../../../testdata/realtime.json"

func testClient(t *testing.T, fn func(*stdhttp.Request) (*stdhttp.Response, error)) *http.Client {
	t.Helper()
	client := http.New(logger.New(slog.LevelError))
	client.Transport = testhelper.MockRoundTripper{Fn: fn}
	return client
}

func testSource(t *testing.T, client *http.Client) *Source {
	t.Helper()
	source, err := New(client, logger.New(slog.LevelError), "api-key", "app-key",
		"AA:BB:CC:DD:EE:FF", time.Second*10)
	if err != nil {
		t.Fatalf("failed to create source: %s", err)
	}
	return source
}

func TestNew(t *testing.T) {
	t.Run("creating a source succeeds", func(t *testing.T) {
		source := testSource(t, http.New(logger.New(slog.LevelError)))
		if source.Name() != "ecowitt-cloud" {
			t.Errorf("expected source name to be ecowitt-cloud, got %s", source.Name())
		}
	})
	t.Run("creating a source without credentials fails", func(t *testing.T) {
		_, err := New(http.New(logger.New(slog.LevelError)), logger.New(slog.LevelError),
			"api-key", "", "AA:BB:CC:DD:EE:FF", 0)
		if err == nil {
			t.Fatal("expected source creation to fail")
		}
	})
}

func TestSource_Fetch(t *testing.T) {
	t.Run("fetching real-time data returns a cloud payload", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			query := req.URL.Query()
			if query.Get("api_key") != "api-key" || query.Get("application_key") != "app-key" {
				t.Error("expected API credentials as query parameters")
			}
			if query.Get("mac") != "AA:BB:CC:DD:EE:FF" {
				t.Errorf("expected device MAC as query parameter, got %s", query.Get("mac"))
			}
			data, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("failed to open JSON response file: %s", err)
			}
			return &stdhttp.Response{StatusCode: 200, Body: data, Header: make(stdhttp.Header)}, nil
		})

		payload, err := testSource(t, client).Fetch(t.Context())
		if err != nil {
			t.Fatalf("failed to fetch real-time data: %s", err)
		}
		cloud, ok := payload.(*station.CloudPayload)
		if !ok {
			t.Fatalf("expected a cloud payload, got %T", payload)
		}
		if cloud.Data.Outdoor.Temperature.Value != "72.5" {
			t.Errorf("expected outdoor temperature value 72.5, got %s",
				cloud.Data.Outdoor.Temperature.Value)
		}
	})
	t.Run("non-zero envelope code maps to a malformed source error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			body := io.NopCloser(strings.NewReader(`{"code":40010,"msg":"api key invalid"}`))
			return &stdhttp.Response{StatusCode: 200, Body: body, Header: make(stdhttp.Header)}, nil
		})

		_, err := testSource(t, client).Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceMalformed) {
			t.Errorf("expected %s, got %s", station.ErrSourceMalformed, err)
		}
	})
	t.Run("non-2xx status maps to a malformed source error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			body := io.NopCloser(strings.NewReader(`{}`))
			return &stdhttp.Response{StatusCode: 500, Body: body, Header: make(stdhttp.Header)}, nil
		})

		_, err := testSource(t, client).Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceMalformed) {
			t.Errorf("expected %s, got %s", station.ErrSourceMalformed, err)
		}
	})
	t.Run("transport failure maps to an unreachable error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("no route to host")
		})

		_, err := testSource(t, client).Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceUnreachable) {
			t.Errorf("expected %s, got %s", station.ErrSourceUnreachable, err)
		}
	})
}
