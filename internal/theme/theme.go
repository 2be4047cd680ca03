// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme holds the colors of the splash.
package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidColor is returned when a theme color is not a "#rrggbb" hex string.
var ErrInvalidColor = errors.New("invalid theme color")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Theme is the set of colors used to draw the splash.
type Theme struct {
	Foreground string `yaml:"foreground" hcl:"foreground,optional" json:"foreground"`
	Accent     string `yaml:"accent" hcl:"accent,optional" json:"accent"`
	AccentDark string `yaml:"accent_dark" hcl:"accent_dark,optional" json:"accent_dark"`
	Background string `yaml:"background" hcl:"background,optional" json:"background"`
	SubText    string `yaml:"sub_text" hcl:"sub_text,optional" json:"sub_text"`
}

// Default returns the launcher brand theme: green on dark gray.
func Default() Theme {
	return Theme{
		Foreground: "#ffffff",
		Accent:     "#69a33c",
		AccentDark: "#334f1d",
		Background: "#1e1e1e",
		SubText:    "#c0c0c0",
	}
}

// WithDefaults fills every empty color from Default.
func (t Theme) WithDefaults() Theme {
	d := Default()

	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}

	fill(&t.Foreground, d.Foreground)
	fill(&t.Accent, d.Accent)
	fill(&t.AccentDark, d.AccentDark)
	fill(&t.Background, d.Background)
	fill(&t.SubText, d.SubText)

	return t
}

// Validate checks that every non-empty color is a hex color.
func (t Theme) Validate() error {
	var errs []error

	for _, f := range []struct{ name, value string }{
		{"foreground", t.Foreground},
		{"accent", t.Accent},
		{"accent_dark", t.AccentDark},
		{"background", t.Background},
		{"sub_text", t.SubText},
	} {
		if f.value != "" && !hexColor.MatchString(f.value) {
			errs = append(errs, fmt.Errorf("%w: %s = %q", ErrInvalidColor, f.name, f.value))
		}
	}

	return errors.Join(errs...)
}
