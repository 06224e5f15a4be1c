package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	petalerrors "github.com/petal-ui/petal/pkg/errors"
)

// themeFile is the on-disk representation of a theme. Colours are plain hex
// strings; file themes do not distinguish light and dark terminals.
type themeFile struct {
	Name    string            `yaml:"name" validate:"required,theme_name"`
	Base    string            `yaml:"base" validate:"omitempty,oneof=light dark retro frost"`
	Corners string            `yaml:"corners" validate:"omitempty,oneof=none normal rounded thick double"`
	Colors  map[string]colour `yaml:"colors" validate:"dive"`
	Spacing spacingFile       `yaml:"spacing"`
}

type colour struct {
	Base     string `yaml:"base" validate:"omitempty,hexcolor"`
	On       string `yaml:"on" validate:"omitempty,hexcolor"`
	Muted    string `yaml:"muted" validate:"omitempty,hexcolor"`
	Contrast string `yaml:"contrast" validate:"omitempty,hexcolor"`
}

type spacingFile struct {
	Padding []int `yaml:"padding" validate:"omitempty,max=7,dive,gte=0,lte=16"`
	Margin  []int `yaml:"margin" validate:"omitempty,max=7,dive,gte=0,lte=16"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)

	slotNames = map[string]struct{}{
		"primary": {}, "secondary": {}, "accent": {}, "neutral": {},
		"surface": {}, "info": {}, "success": {}, "warning": {}, "danger": {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Loader parses theme files from disk.
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a Loader that reports through the given logger.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile reads, validates and converts a theme file using a silent loader.
func LoadFile(path string) (Theme, error) {
	return NewLoader(zerolog.Nop()).LoadFile(path)
}

// LoadFile reads, validates and converts a theme file.
func (l *Loader) LoadFile(path string) (Theme, error) {
	l.log.Debug().Str("path", path).Msg("loading theme file")

	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("theme file unreadable")
		return Theme{}, petalerrors.NewParseError(path, 0, err)
	}

	theme, err := l.Parse(data, path)
	if err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("theme file rejected")
		return Theme{}, err
	}

	l.log.Info().Str("path", path).Str("theme", theme.Name).Msg("theme loaded")
	return theme, nil
}

// Parse validates and converts theme file contents. The path is used only for
// error reporting.
func (l *Loader) Parse(data []byte, path string) (Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, petalerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&file); err != nil {
		return Theme{}, convertValidationError(err)
	}

	for slot := range file.Colors {
		if _, ok := slotNames[slot]; !ok {
			return Theme{}, petalerrors.NewValidationError(
				"colors."+slot, "unknown colour slot", nil)
		}
	}

	return buildTheme(file), nil
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

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		field := strings.ToLower(strings.TrimPrefix(first.StructNamespace(), "themeFile."))
		return petalerrors.NewValidationError(
			field, fmt.Sprintf("failed %q constraint", first.Tag()), err)
	}
	return petalerrors.NewValidationError("", err.Error(), err)
}

func buildTheme(file themeFile) Theme {
	base, ok := Builtin(file.Base)
	if !ok {
		base = Light()
	}
	base.Name = file.Name

	for slot, c := range file.Colors {
		set := paletteSlotByName(&base.Palette, slot)
		overrideColour(&set.Base, c.Base)
		overrideColour(&set.OnBase, c.On)
		overrideColour(&set.Muted, c.Muted)
		overrideColour(&set.Contrast, c.Contrast)
	}

	switch file.Corners {
	case "none":
		base.Borders.Rounded = lipgloss.Border{}
	case "normal":
		base.Borders.Rounded = lipgloss.NormalBorder()
	case "thick":
		base.Borders.Rounded = lipgloss.ThickBorder()
	case "double":
		base.Borders.Rounded = lipgloss.DoubleBorder()
	}

	copySpacing(&base.Spacing.Padding, file.Spacing.Padding)
	copySpacing(&base.Spacing.Margin, file.Spacing.Margin)

	base.Typography = defaultTypography(base.Palette)
	return base.Normalize()
}

func paletteSlotByName(p *Palette, name string) *ColourSet {
	switch name {
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "accent":
		return &p.Accent
	case "neutral":
		return &p.Neutral
	case "surface":
		return &p.Surface
	case "info":
		return &p.Info
	case "success":
		return &p.Success
	case "warning":
		return &p.Warning
	default:
		return &p.Danger
	}
}

func overrideColour(target *lipgloss.AdaptiveColor, hex string) {
	if hex == "" {
		return
	}
	target.Light = hex
	target.Dark = hex
}

func copySpacing(table *spacingTable, values []int) {
	for i, v := range values {
		if i >= len(table) {
			return
		}
		table[i] = v
	}
}
