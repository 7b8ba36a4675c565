package main

import (
	"bytes"
	"image"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/pui"
	"github.com/mjl-/pui/termhost"
)

func TestSizeValue(t *testing.T) {
	tests := []struct {
		in      string
		want    image.Point
		wantErr bool
	}{
		{"800x600", image.Pt(800, 600), false},
		{"1x1", image.Pt(1, 1), false},
		{"800", image.Point{}, true},
		{"ax600", image.Point{}, true},
		{"800xb", image.Point{}, true},
		{"0x600", image.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p image.Point
			v := sizeValue{&p}
			err := v.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.in, v.String())
		})
	}
	assert.Equal(t, "size", sizeValue{}.Type())
	assert.Equal(t, "", sizeValue{}.String())
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, Execute())
	assert.Contains(t, buf.String(), "puidemo v0.0.0-dev")
}

func TestSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["term"])
	assert.True(t, names["draw"])
	assert.True(t, names["version"])
	assert.NotNil(t, drawCmd.Flags().Lookup("size"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func newTestDemo(t *testing.T) (*termhost.Host, *demo) {
	t.Helper()
	h := termhost.NewHost(logr.Discard(), "test", pui.DefaultPalette)
	h.Resize(80, 24)
	return h, newDemo(logr.Discard(), h.Stack, h)
}

func TestDemoBarFollowsWindow(t *testing.T) {
	h, d := newTestDemo(t)
	require.Equal(t, []pui.Dialog{d.bar}, h.Stack.Dialogs())
	assert.Equal(t, image.ZP, d.bar.Rect().Min)
	assert.Equal(t, 640, d.bar.Rect().Dx())
	assert.True(t, d.bar.Pinned)

	h.Resize(100, 30)
	assert.Equal(t, 800, d.bar.Rect().Dx())
}

func TestDemoAbout(t *testing.T) {
	h, d := newTestDemo(t)
	d.about(nil, d.bar, h.Stack)

	require.Len(t, h.Stack.Dialogs(), 2)
	info, ok := h.Stack.Top().(*pui.SimpleInfo)
	require.True(t, ok)
	assert.Equal(t, pui.Dialog(info), h.Stack.KeyFocus())
	assert.Len(t, info.Items(), 4)

	r := info.Rect()
	assert.Equal(t, h.Size().Sub(r.Size()).Div(2), r.Min)
	assert.Contains(t, h.Render(), "puidemo")
}

func TestDemoQuit(t *testing.T) {
	h, d := newTestDemo(t)
	d.quit(nil, d.bar, h.Stack)
	assert.ErrorIs(t, h.Err(), termhost.ErrQuit)
}

func TestLogo(t *testing.T) {
	img := logo()
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	_, _, _, a := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestWithRegistry(t *testing.T) {
	lgr := logr.Discard()
	ran := false
	require.NoError(t, withRegistry(&lgr, func() error {
		ran = true
		_, err := pui.Init()
		assert.ErrorIs(t, err, pui.ErrRegistryInit)
		return nil
	}))
	assert.True(t, ran)

	// Closed on return, so it can be set up again.
	boom := assert.AnError
	assert.ErrorIs(t, withRegistry(&lgr, func() error { return boom }), boom)
}
