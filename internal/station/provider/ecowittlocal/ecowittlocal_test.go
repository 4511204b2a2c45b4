// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package ecowittlocal

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

const testFile = "../../../../testdata/livedata.json"

func testClient(t *testing.T, fn func(*stdhttp.Request) (*stdhttp.Response, error)) *http.Client {
	t.Helper()
	client := http.New(logger.New(slog.LevelError))
	client.Transport = testhelper.MockRoundTripper{Fn: fn}
	return client
}

func TestNew(t *testing.T) {
	t.Run("creating a source succeeds", func(t *testing.T) {
		source, err := New(http.New(logger.New(slog.LevelError)), logger.New(slog.LevelError),
			"192.168.1.100", time.Second*10)
		if err != nil {
			t.Fatalf("failed to create source: %s", err)
		}
		if source.Name() != "ecowitt-local" {
			t.Errorf("expected source name to be ecowitt-local, got %s", source.Name())
		}
	})
	t.Run("creating a source without IP fails", func(t *testing.T) {
		_, err := New(http.New(logger.New(slog.LevelError)), logger.New(slog.LevelError), "", 0)
		if err == nil {
			t.Fatal("expected source creation to fail")
		}
	})
}

func TestSource_Fetch(t *testing.T) {
	t.Run("fetching live data returns a local payload", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			if !strings.HasSuffix(req.URL.Path, "/get_livedata_info") {
				t.Errorf("expected livedata path, got %s", req.URL.Path)
			}
			data, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("failed to open JSON response file: %s", err)
			}
			return &stdhttp.Response{StatusCode: 200, Body: data, Header: make(stdhttp.Header)}, nil
		})

		source, err := New(client, logger.New(slog.LevelError), "192.168.1.100", time.Second*10)
		if err != nil {
			t.Fatalf("failed to create source: %s", err)
		}
		payload, err := source.Fetch(t.Context())
		if err != nil {
			t.Fatalf("failed to fetch live data: %s", err)
		}
		local, ok := payload.(*station.LocalPayload)
		if !ok {
			t.Fatalf("expected a local payload, got %T", payload)
		}
		if len(local.CommonList) != 10 {
			t.Errorf("expected 10 sensor entries, got %d", len(local.CommonList))
		}
		if local.FetchedAt.IsZero() {
			t.Error("expected the capture time to be set")
		}
	})
	t.Run("non-JSON body maps to a malformed source error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			body := io.NopCloser(strings.NewReader("<html>login required</html>"))
			return &stdhttp.Response{StatusCode: 200, Body: body, Header: make(stdhttp.Header)}, nil
		})

		source, err := New(client, logger.New(slog.LevelError), "192.168.1.100", time.Second*10)
		if err != nil {
			t.Fatalf("failed to create source: %s", err)
		}
		_, err = source.Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceMalformed) {
			t.Errorf("expected %s, got %s", station.ErrSourceMalformed, err)
		}
	})
	t.Run("non-2xx status maps to a malformed source error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			body := io.NopCloser(strings.NewReader(`{}`))
			return &stdhttp.Response{StatusCode: 503, Body: body, Header: make(stdhttp.Header)}, nil
		})

		source, err := New(client, logger.New(slog.LevelError), "192.168.1.100", time.Second*10)
		if err != nil {
			t.Fatalf("failed to create source: %s", err)
		}
		_, err = source.Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceMalformed) {
			t.Errorf("expected %s, got %s", station.ErrSourceMalformed, err)
		}
	})
	t.Run("exceeded timeout maps to a timeout error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

		source, err := New(client, logger.New(slog.LevelError), "192.168.1.100", time.Millisecond*20)
		if err != nil {
			t.Fatalf("failed to create source: %s", err)
		}
		_, err = source.Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceTimeout) {
			t.Errorf("expected %s, got %s", station.ErrSourceTimeout, err)
		}
	})
	t.Run("transport failure maps to an unreachable error", func(t *testing.T) {
		client := testClient(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("connection refused")
		})

		source, err := New(client, logger.New(slog.LevelError), "192.168.1.100", time.Second*10)
		if err != nil {
			t.Fatalf("failed to create source: %s", err)
		}
		_, err = source.Fetch(t.Context())
		if !errors.Is(err, station.ErrSourceUnreachable) {
			t.Errorf("expected %s, got %s", station.ErrSourceUnreachable, err)
		}
	})
}
