package printing

import (
	"testing"
	"time"

	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromedpConfig_Defaults(t *testing.T) {
	config := &ChromedpConfig{}

	assert.Equal(t, time.Duration(0), config.DefaultTimeout)
	assert.Empty(t, config.RemoteURL)
	assert.False(t, config.NoSandbox)
}

func TestNewChromedpRenderer_AppliesDefaults(t *testing.T) {
	r, err := NewChromedpRenderer(&ChromedpConfig{RemoteURL: "ws://127.0.0.1:9222"})
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, defaultChromeTimeout, r.config.DefaultTimeout)
	assert.Equal(t, "Labels", r.config.Title)
	assert.NotNil(t, r.allocCtx)
}

func TestBuildPrintParams_LandscapeLetter(t *testing.T) {
	params := buildPrintParams(labeling.StandardGeometry())

	assert.InDelta(t, 11.0, params.paperWidth, 1e-9)
	assert.InDelta(t, 8.5, params.paperHeight, 1e-9)
	assert.Equal(t, defaultScale, params.scale)
}

func TestNewSheetRenderer_Chromedp(t *testing.T) {
	r, err := NewSheetRenderer(EngineChromedp, nil, &ChromedpConfig{RemoteURL: "ws://127.0.0.1:9222"})
	require.NoError(t, err)
	defer r.Close()

	assert.IsType(t, &ChromedpRenderer{}, r)
}
