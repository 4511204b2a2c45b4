// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package output persists rendered frames as PNG files. Writes are atomic:
// readers of the target path only ever observe a complete previous frame or
// a complete new one.
package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nakoukal/eink-dashboard/internal/logger"
)

// Sink writes frames to a fixed filesystem path.
type Sink struct {
	path string
	log  *logger.Logger
}

// New returns a Sink targeting the given path.
func New(path string, log *logger.Logger) *Sink {
	return &Sink{
		path: path,
		log:  log,
	}
}

// Path returns the target path of the sink.
func (s *Sink) Path() string {
	return s.path
}

// Write encodes the image as PNG and atomically replaces the target file.
// The encoding goes to a temporary file in the target directory which is
// renamed over the destination only after a successful flush, so a failure
// at any stage leaves the previous file untouched.
func (s *Sink) Write(img image.Image) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := png.Encode(tmp, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush temporary file: %w", err)
	}
	name := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	tmp = nil
	if err := os.Rename(name, s.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("failed to replace output file: %w", err)
	}

	s.log.Debug("frame written", "path", s.path)
	return nil
}
