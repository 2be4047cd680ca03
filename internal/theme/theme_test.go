// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	th := Theme{Accent: "#ff0000"}.WithDefaults()

	assert.Equal(t, "#ff0000", th.Accent)
	assert.Equal(t, Default().Background, th.Background)
	assert.Equal(t, Default().Foreground, th.Foreground)
	assert.Equal(t, Default(), Theme{}.WithDefaults())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
	require.NoError(t, Theme{}.Validate())

	err := Theme{Accent: "green", Background: "#12345"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Contains(t, err.Error(), "accent")
	assert.Contains(t, err.Error(), "background")
}

func TestValidate_StableOrder(t *testing.T) {
	th := Theme{Foreground: "a", Accent: "b", AccentDark: "c", Background: "d", SubText: "e"}
	want := th.Validate().Error()

	for k := 0; k < 20; k++ {
		assert.Equal(t, want, th.Validate().Error())
	}

	assert.Regexp(t, `(?s)foreground.*accent.*accent_dark.*background.*sub_text`, want)
}
