// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ParseYAML decodes a YAML config. Unknown keys are rejected.
func ParseYAML(data []byte) (*Config, error) {
	var c Config

	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	return &c, nil
}
