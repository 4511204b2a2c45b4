// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package panel abstracts the e-paper hardware behind a small driver
// interface. Bistable panels must be put back to sleep after every refresh
// to avoid ghosting and burn-in, so the display cycle always pairs Init
// with Sleep regardless of intermediate failures.
package panel

import (
	"errors"
	"fmt"

	"github.com/nakoukal/eink-dashboard/internal/logger"
)

var (
	// ErrInitFailed is returned when the panel cannot be woken up.
	ErrInitFailed = errors.New("panel initialization failed")
	// ErrDisplayFailed is returned when a frame cannot be pushed to the panel.
	ErrDisplayFailed = errors.New("panel display failed")
)

// Driver is the minimal contract a panel implementation has to satisfy.
type Driver interface {
	// Init wakes the panel up and prepares it for a refresh.
	Init() error
	// Display pushes a packed frame buffer to the panel.
	Display(buf []byte) error
	// Clear flushes the panel to solid white.
	Clear() error
	// Sleep puts the panel into deep sleep.
	Sleep() error
}

// Show runs a full refresh cycle on the driver: init, display, sleep. Sleep
// is attempted even when the display step fails; a sleep failure never masks
// an earlier error.
func Show(drv Driver, buf []byte, log *logger.Logger) error {
	if err := drv.Init(); err != nil {
		return fmt.Errorf("%w: %s", ErrInitFailed, err)
	}

	var displayErr error
	if err := drv.Display(buf); err != nil {
		displayErr = fmt.Errorf("%w: %s", ErrDisplayFailed, err)
	}
	if err := drv.Sleep(); err != nil {
		if displayErr != nil {
			log.Warn("failed to put panel to sleep", logger.Err(err))
			return displayErr
		}
		return fmt.Errorf("failed to put panel to sleep: %w", err)
	}
	return displayErr
}
