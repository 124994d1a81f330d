package form

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facetErrors "github.com/facetui/facet/pkg/errors"
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

func TestParseFullDocument(t *testing.T) {
	doc := []byte(`
layout: twoColumn
validation_display: summary
density: compact
keyboard_avoidance: false
row_separators: false
`)

	cfg, err := Parse(doc, "form.yaml")
	require.NoError(t, err)

	assert.False(t, cfg.LayoutMode.IsAuto())
	assert.Equal(t, platform.LayoutTwoColumn, cfg.LayoutMode.Resolve(platform.LayoutStacked))
	assert.Equal(t, ValidationDisplaySummary, cfg.ValidationDisplay)
	require.NotNil(t, cfg.Density)
	assert.Equal(t, theme.DensityCompact, *cfg.Density)
	assert.False(t, cfg.KeyboardAvoidanceEnabled)
	assert.False(t, cfg.ShowRowSeparators)
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), "form.yaml")
	require.NoError(t, err)

	assert.True(t, cfg.LayoutMode.IsAuto())
	assert.Equal(t, ValidationDisplayInline, cfg.ValidationDisplay)
	assert.Nil(t, cfg.Density)
	assert.True(t, cfg.KeyboardAvoidanceEnabled)
	assert.True(t, cfg.ShowRowSeparators)
}

func TestParseExplicitAutoLayout(t *testing.T) {
	cfg, err := Parse([]byte("layout: auto\n"), "form.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.LayoutMode.IsAuto())
}

func TestParseRejectsUnknownEnumValue(t *testing.T) {
	_, err := Parse([]byte("layout: sideways\n"), "form.yaml")
	require.Error(t, err)

	var verr *facetErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "layout", verr.Field)
	assert.Equal(t, "sideways", verr.Value)
	assert.Contains(t, verr.Message, "must be one of")
}

func TestParseRejectsUnknownDensity(t *testing.T) {
	_, err := Parse([]byte("density: cozy\n"), "form.yaml")
	require.Error(t, err)

	var verr *facetErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "density", verr.Field)
}

func TestParseMalformedYAMLReportsLine(t *testing.T) {
	doc := []byte("layout: inline\nvalidation_display: [unclosed\n")

	_, err := Parse(doc, "form.yaml")
	require.Error(t, err)

	var perr *facetErrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "form.yaml", perr.Path)
	assert.Greater(t, perr.Line, 0)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: stacked\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, platform.LayoutStacked, cfg.LayoutMode.Resolve(platform.LayoutInline))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var perr *facetErrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
