package settings

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/pui"
)

func TestNewRun(t *testing.T) {
	r := NewRun()
	assert.Equal(t, HostTerm, r.Host)
	assert.Equal(t, image.Pt(800, 600), r.WindowSize)
	assert.Equal(t, "800x600", r.Dim())
}

func TestParseHostKind(t *testing.T) {
	tests := []struct {
		in      string
		want    HostKind
		wantErr bool
	}{
		{"term", HostTerm, false},
		{"draw", HostDraw, false},
		{"x11", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHostKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	r := NewRun()
	got, ok := FromContext(IntoContext(context.Background(), r))
	require.True(t, ok)
	assert.Same(t, r, got)
}

func TestDefaultThemePalette(t *testing.T) {
	th := DefaultTheme()
	assert.Len(t, th.Colors, pui.NColorRoles)
	p, err := th.Palette()
	require.NoError(t, err)
	assert.Equal(t, pui.DefaultPalette, p)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme([]byte("font: mono\ncolors:\n  menu-bg: \"#102030\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "mono", th.Font)

	p, err := th.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, p.Color(pui.ColorMenuBG))
	assert.Equal(t, pui.DefaultPalette.Color(pui.ColorMenuFG), p.Color(pui.ColorMenuFG))
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown role", "colors:\n  title-bg: \"#000000\"\n"},
		{"short color", "colors:\n  menu-bg: \"#000\"\n"},
		{"no hash", "colors:\n  menu-bg: \"0000000\"\n"},
		{"not hex", "colors:\n  menu-bg: \"#00zz00\"\n"},
		{"bad yaml", "colors: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  countersink: \"#abcdef\"\n"), 0o644))
	th, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", th.Colors["countersink"])

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestColorRoundTrip(t *testing.T) {
	c := color.RGBA{0xde, 0xad, 0x01, 0xff}
	got, err := ParseColor(FormatColor(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
