package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformsTextOutput(t *testing.T) {
	out, err := runCommand(t, "platforms")
	require.NoError(t, err)

	assert.Contains(t, out, "handheld (handheld)")
	assert.Contains(t, out, "desktop (desktop)")
	assert.Contains(t, out, "wrist (wrist)")
	assert.Contains(t, out, "form rows: twoColumn")
	assert.Contains(t, out, "text entry: separateScreen")
}

func TestPlatformsJSONOutput(t *testing.T) {
	out, err := runCommand(t, "platforms", "--json")
	require.NoError(t, err)

	var doc map[string]capabilitiesSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc, 4)
	assert.True(t, doc["desktop"].Hover)
	assert.False(t, doc["desktop"].LargeTapTargets)
	assert.Equal(t, "stacked", doc["wrist"].FormRowLayout)
	assert.Equal(t, "navigation", doc["wrist"].Picker)
}

func TestVersionOutput(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "facet dev")
	assert.Contains(t, out, "go: go")
}

func TestPreviewRendersAllFamilies(t *testing.T) {
	out, err := runCommand(t, "preview")
	require.NoError(t, err)

	assert.Contains(t, out, "Palette")
	assert.Contains(t, out, "Buttons")
	assert.Contains(t, out, "Cards")
	assert.Contains(t, out, "List rows")
}

func TestPreviewSingleFamily(t *testing.T) {
	out, err := runCommand(t, "preview", "--family", "toggle")
	require.NoError(t, err)

	assert.Contains(t, out, "Toggle")
	assert.NotContains(t, out, "Buttons")
}

func TestPreviewRejectsUnknownFamily(t *testing.T) {
	_, err := runCommand(t, "preview", "--family", "carousel")
	assert.Error(t, err)
}
