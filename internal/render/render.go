// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package render rasterizes layout primitives onto a 1-bit canvas suitable
// for monochrome e-paper panels.
package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/nakoukal/eink-dashboard/internal/fontres"
	"github.com/nakoukal/eink-dashboard/internal/layout"
	"github.com/nakoukal/eink-dashboard/internal/logger"
)

// Renderer draws layout primitives using faces supplied by a font resolver.
type Renderer struct {
	fonts *fontres.Resolver
	log   *logger.Logger
}

// New returns a Renderer backed by the given font resolver.
func New(fonts *fontres.Resolver, log *logger.Logger) *Renderer {
	return &Renderer{
		fonts: fonts,
		log:   log,
	}
}

// Render rasterizes the primitives in order onto a fresh white canvas of the
// given geometry. Later primitives overdraw earlier ones.
func (r *Renderer) Render(prims []layout.Primitive, geom layout.Geometry) *Bitmap {
	bmp := NewBitmap(geom.Width, geom.Height)
	for _, prim := range prims {
		switch p := prim.(type) {
		case layout.TextRun:
			r.drawText(bmp, p)
		case layout.Rule:
			drawRule(bmp, p)
		}
	}
	return bmp
}

// drawText anchors the run at its top-left (or top-right for right-aligned
// runs) and derives the baseline from the face ascent.
func (r *Renderer) drawText(bmp *Bitmap, run layout.TextRun) {
	if run.Text == "" {
		return
	}
	face := r.fonts.Resolve(run.Size, run.Weight)
	drawer := &font.Drawer{
		Dst:  bmp,
		Src:  image.Black,
		Face: face,
	}
	x := fixed.I(run.X)
	if run.Align == layout.AlignRight {
		x -= drawer.MeasureString(run.Text)
	}
	drawer.Dot = fixed.Point26_6{
		X: x,
		Y: fixed.I(run.Y) + face.Metrics().Ascent,
	}
	drawer.DrawString(run.Text)
}

// drawRule fills the axis-aligned band described by the rule. Horizontal
// rules grow downward and vertical rules grow rightward by the thickness.
func drawRule(bmp *Bitmap, rule layout.Rule) {
	thickness := rule.Thickness
	if thickness < 1 {
		thickness = 1
	}
	x0, x1 := rule.X0, rule.X1
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := rule.Y0, rule.Y1
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y0 == y1 {
		y1 = y0 + thickness - 1
	} else if x0 == x1 {
		x1 = x0 + thickness - 1
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			bmp.SetPixel(x, y, true)
		}
	}
}
