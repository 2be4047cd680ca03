// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every problem in the config at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Surface {
	case SurfaceAuto, SurfaceTUI, SurfacePlain:
	default:
		result = multierror.Append(result, fmt.Errorf("surface %q: must be one of %s, %s, %s",
			c.Surface, SurfaceAuto, SurfaceTUI, SurfacePlain))
	}

	if c.Theme != nil {
		if err := c.Theme.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	seen := make(map[string]struct{}, len(c.Steps))

	for i, s := range c.Steps {
		if s.Name == "" {
			result = multierror.Append(result, fmt.Errorf("step %d: name is required", i))
		} else if _, dup := seen[s.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("step %q: duplicate name", s.Name))
		}

		seen[s.Name] = struct{}{}

		switch s.Kind {
		case KindFixed:
		case KindCount, KindBytes:
			if s.Total < 0 {
				result = multierror.Append(result, fmt.Errorf("step %q: total must not be negative", s.Name))
			}
		default:
			result = multierror.Append(result, fmt.Errorf("step %q: unknown kind %q", s.Name, s.Kind))
		}

		if s.Weight < 0 {
			result = multierror.Append(result, fmt.Errorf("step %q: weight must not be negative", s.Name))
		}

		if d, err := time.ParseDuration(s.Duration); err != nil {
			result = multierror.Append(result, fmt.Errorf("step %q: duration: %w", s.Name, err))
		} else if d < 0 {
			result = multierror.Append(result, fmt.Errorf("step %q: duration must not be negative", s.Name))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}
