// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logo loads the bundled launcher logo and draws it with terminal cells.
package logo

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register the PNG decoder for image.Decode
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
	"github.com/spf13/afero"
)

// DefaultPath is the path of the bundled logo inside the asset filesystem.
const DefaultPath = "assets/kraken.png"

const (
	halfBlock      = "▀"
	alphaThreshold = 0x8000
)

//go:embed assets
var assets embed.FS

// ErrLoad is returned when the logo cannot be opened or decoded.
var ErrLoad = errors.New("failed to load logo")

// FsFactory returns the filesystem logos are read from.
// The default serves the embedded assets.
var FsFactory = func() afero.Fs {
	return afero.FromIOFS{FS: assets}
}

// Load reads and decodes the image at path. An empty path loads DefaultPath.
func Load(path string) (image.Image, error) {
	if path == "" {
		path = DefaultPath
	}

	f, err := FsFactory().Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	defer f.Close() //nolint:errcheck

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	return img, nil
}

// Cells scales img to width columns and renders it with upper half blocks,
// two pixel rows per line. Transparent pixels take the background color.
func Cells(img image.Image, width int, background string) []string {
	if img == nil || width <= 0 {
		return nil
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	height := width * b.Dy() / b.Dx()
	if height%2 == 1 {
		height++
	}

	if height == 0 {
		height = 2
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Bilinear) //nolint:gosec
	sb := scaled.Bounds()

	lines := make([]string, 0, height/2) //nolint:mnd

	for y := sb.Min.Y; y < sb.Max.Y; y += 2 {
		var line strings.Builder

		for x := sb.Min.X; x < sb.Max.X; x++ {
			top := hex(scaled.At(x, y), background)
			bottom := background

			if y+1 < sb.Max.Y {
				bottom = hex(scaled.At(x, y+1), background)
			}

			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}

		lines = append(lines, line.String())
	}

	return lines
}

func hex(c color.Color, background string) string {
	r, g, b, a := c.RGBA()
	if a < alphaThreshold {
		return background
	}

	// un-premultiply so anti-aliased edges keep their hue
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a

	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
