package form

import (
	stdErrors "errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	facetErrors "github.com/facetui/facet/pkg/errors"
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// fileConfig is the YAML-facing shape of a form configuration. Every enum
// field is a string constrained by validator tags; Parse maps it onto the
// typed Configuration.
type fileConfig struct {
	Layout            string `yaml:"layout" validate:"omitempty,oneof=auto stacked inline twoColumn"`
	ValidationDisplay string `yaml:"validation_display" validate:"omitempty,oneof=inline below summary hidden"`
	Density           string `yaml:"density" validate:"omitempty,oneof=compact regular spacious"`
	KeyboardAvoidance *bool  `yaml:"keyboard_avoidance"`
	RowSeparators     *bool  `yaml:"row_separators"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a form configuration file from disk, validates it, and
// returns the typed Configuration. Absent fields keep their defaults.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, facetErrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a form configuration document. The path is
// used only for error reporting.
func Parse(data []byte, path string) (Configuration, error) {
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Configuration{}, facetErrors.NewParseError(path, extractLine(err), err)
	}

	if err := validate.Struct(raw); err != nil {
		return Configuration{}, translateValidation(err)
	}

	cfg := DefaultConfiguration()

	switch raw.Layout {
	case "", "auto":
		cfg.LayoutMode = platform.Auto[platform.FormRowLayout]()
	case "stacked":
		cfg.LayoutMode = platform.Fixed(platform.LayoutStacked)
	case "inline":
		cfg.LayoutMode = platform.Fixed(platform.LayoutInline)
	case "twoColumn":
		cfg.LayoutMode = platform.Fixed(platform.LayoutTwoColumn)
	}

	switch raw.ValidationDisplay {
	case "below":
		cfg.ValidationDisplay = ValidationDisplayBelow
	case "summary":
		cfg.ValidationDisplay = ValidationDisplaySummary
	case "hidden":
		cfg.ValidationDisplay = ValidationDisplayHidden
	}

	switch raw.Density {
	case "compact":
		d := theme.DensityCompact
		cfg.Density = &d
	case "regular":
		d := theme.DensityRegular
		cfg.Density = &d
	case "spacious":
		d := theme.DensitySpacious
		cfg.Density = &d
	}

	if raw.KeyboardAvoidance != nil {
		cfg.KeyboardAvoidanceEnabled = *raw.KeyboardAvoidance
	}
	if raw.RowSeparators != nil {
		cfg.ShowRowSeparators = *raw.RowSeparators
	}

	return cfg, nil
}

func translateValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return facetErrors.NewValidationError(
			yamlFieldName(fe.StructField()),
			fmt.Sprintf("%v", fe.Value()),
			fmt.Sprintf("must be one of: %s", fe.Param()),
		)
	}
	return facetErrors.NewValidationError("", "", err.Error())
}

func yamlFieldName(structField string) string {
	switch structField {
	case "Layout":
		return "layout"
	case "ValidationDisplay":
		return "validation_display"
	case "Density":
		return "density"
	default:
		return structField
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
