// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package fontres resolves pixel sizes to loadable font faces with an ordered
// fallback chain.
package fontres

import (
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/nakoukal/eink-dashboard/internal/logger"
)

// Weight selects the preferred typeface weight for a text run.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

type faceKey struct {
	size   int
	weight Weight
}

// Resolver resolves a requested pixel size and weight to a usable font.Face.
// Resolved faces are cached for the lifetime of one run; a Resolver is
// constructed fresh per process invocation.
type Resolver struct {
	bold    []string
	regular []string
	log     *logger.Logger

	parsed map[string]*sfnt.Font
	failed map[string]bool
	faces  map[faceKey]font.Face
}

// New returns a Resolver searching the given bold and regular typeface paths.
func New(log *logger.Logger, bold, regular []string) *Resolver {
	return &Resolver{
		bold:    bold,
		regular: regular,
		log:     log,
		parsed:  make(map[string]*sfnt.Font),
		failed:  make(map[string]bool),
		faces:   make(map[faceKey]font.Face),
	}
}

// Resolve returns a font face for the requested pixel size and weight. It
// never fails: when no configured typeface is loadable it falls back to a
// minimal built-in face, which ignores the requested size. The degradation is
// logged, not surfaced as an error.
func (r *Resolver) Resolve(size int, weight Weight) font.Face {
	key := faceKey{size: size, weight: weight}
	if face, ok := r.faces[key]; ok {
		return face
	}

	chain := append(append([]string{}, r.regular...), r.bold...)
	if weight == WeightBold {
		chain = append(append([]string{}, r.bold...), r.regular...)
	}

	for _, path := range chain {
		fnt := r.loadFont(path)
		if fnt == nil {
			continue
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			r.log.Warn("failed to create font face", slog.String("path", path),
				slog.Int("size", size), logger.Err(err))
			continue
		}
		r.faces[key] = face
		return face
	}

	r.log.Warn("no typeface loadable, falling back to built-in face with degraded quality",
		slog.Int("size", size))
	r.faces[key] = basicfont.Face7x13
	return basicfont.Face7x13
}

// loadFont reads and parses a TTF file, caching both successes and failures
// for the run.
func (r *Resolver) loadFont(path string) *sfnt.Font {
	if fnt, ok := r.parsed[path]; ok {
		return fnt
	}
	if r.failed[path] {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.failed[path] = true
		return nil
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		r.log.Warn("failed to parse font file", slog.String("path", path), logger.Err(err))
		r.failed[path] = true
		return nil
	}
	r.parsed[path] = fnt
	return fnt
}
