// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

package panel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/nakoukal/eink-dashboard/internal/logger"
)

// CommandTimeout bounds a single driver helper invocation. A full e-paper
// refresh takes a few seconds; anything beyond this is a hung helper.
const CommandTimeout = 60 * time.Second

// CommandDriver drives the panel through an external helper binary. Each
// lifecycle step runs the helper with a single subcommand argument; the
// display step additionally streams the packed frame buffer on stdin.
type CommandDriver struct {
	command string
	timeout time.Duration
	log     *logger.Logger
}

// NewCommandDriver returns a CommandDriver for the given helper command.
func NewCommandDriver(command string, log *logger.Logger) (*CommandDriver, error) {
	if command == "" {
		return nil, errors.New("no panel command provided")
	}
	return &CommandDriver{
		command: command,
		timeout: CommandTimeout,
		log:     log,
	}, nil
}

// Init implements Driver.
func (d *CommandDriver) Init() error {
	return d.run("init", nil)
}

// Display implements Driver.
func (d *CommandDriver) Display(buf []byte) error {
	return d.run("display", buf)
}

// Clear implements Driver.
func (d *CommandDriver) Clear() error {
	return d.run("clear", nil)
}

// Sleep implements Driver.
func (d *CommandDriver) Sleep() error {
	return d.run("sleep", nil)
}

func (d *CommandDriver) run(subcommand string, stdin []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.command, subcommand)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	d.log.Debug("running panel helper", "command", d.command, "subcommand", subcommand)
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s step failed: %w: %s", subcommand, err,
				bytes.TrimSpace(stderr.Bytes()))
		}
		return fmt.Errorf("%s step failed: %w", subcommand, err)
	}
	return nil
}
