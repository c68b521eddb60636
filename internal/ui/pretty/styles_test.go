package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrm007/opencode-responsive-tables/internal/ui/pretty"
)

func TestNewStylesColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text))
	assert.Equal(t, text, styles.Success.Render(text))
	assert.Equal(t, text, styles.Dim.Render(text))
}

func TestNewStylesColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)
}

func TestIsColorEnabledAlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
}

func TestIsColorEnabledNeverMode(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("never", &buf))
}

func TestIsColorEnabledAutoNonTTY(t *testing.T) {
	// A bytes.Buffer is not a TTY, so auto mode disables color.
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabledNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}
