package settings

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mjl-/pui"
)

// Theme is the YAML form of a palette. Colors maps role names, as printed
// by pui.ColorRole, to "#rrggbb" values. Roles left out keep their default.
//
//	font: ""
//	colors:
//	  menu-bg: "#f0f0f0"
//	  countersink: "#bbbbbb"
type Theme struct {
	Font   string            `yaml:"font"`
	Colors map[string]string `yaml:"colors"`
}

// DefaultTheme returns the theme of pui.DefaultPalette with the host's
// default font.
func DefaultTheme() Theme {
	t := Theme{Colors: map[string]string{}}
	for r := 0; r < pui.NColorRoles; r++ {
		role := pui.ColorRole(r)
		t.Colors[role.String()] = FormatColor(pui.DefaultPalette.Color(role))
	}
	return t
}

// LoadTheme reads a theme from path and validates it against the default.
func LoadTheme(path string) (Theme, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(buf)
}

// ParseTheme decodes YAML theme data. Unknown roles and malformed colors
// are errors.
func ParseTheme(buf []byte) (Theme, error) {
	var nt Theme
	if err := yaml.Unmarshal(buf, &nt); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}

	t := DefaultTheme()
	t.Font = nt.Font
	names := make([]string, 0, len(nt.Colors))
	for name := range nt.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := pui.ParseColorRole(name); err != nil {
			return Theme{}, fmt.Errorf("theme: %w", err)
		}
		v := nt.Colors[name]
		if _, err := ParseColor(v); err != nil {
			return Theme{}, fmt.Errorf("theme: role %s: %w", name, err)
		}
		t.Colors[name] = v
	}
	return t, nil
}

// Palette returns the colors of t for a host.
func (t Theme) Palette() (pui.Palette, error) {
	p := pui.DefaultPalette
	for name, v := range t.Colors {
		role, err := pui.ParseColorRole(name)
		if err != nil {
			return p, err
		}
		c, err := ParseColor(v)
		if err != nil {
			return p, fmt.Errorf("role %s: %w", name, err)
		}
		p[role] = c
	}
	return p, nil
}

// ParseColor parses an opaque "#rrggbb" color.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("bad color %q, want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
