package drawhost

import (
	"errors"
	"io"
	"testing"
	"time"

	"9fans.net/go/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/pui"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   rune
		key  pui.Key
		mod  pui.KeyMod
		text bool
	}{
		{'a', 'a', pui.ModNone, true},
		{'é', 'é', pui.ModNone, true},
		{'\n', pui.KeyReturn, pui.ModNone, false},
		{'\t', pui.KeyTab, pui.ModNone, false},
		{draw.KeyEscape, pui.KeyEscape, pui.ModNone, false},
		{draw.KeyUp, pui.KeyUp, pui.ModNone, false},
		{draw.KeyLeft, pui.KeyLeft, pui.ModNone, false},
		{draw.KeyCmd + 'q', 'q', pui.ModGUI, false},
		{draw.KeyFn + 1, pui.KeyFn, pui.ModNone, false},
		{0x01, 'a', pui.ModCtrl, false},
	}
	for _, tt := range tests {
		key, mod, text := translateKey(tt.in)
		assert.Equal(t, tt.key, key, "rune %#x", tt.in)
		assert.Equal(t, tt.mod, mod, "rune %#x", tt.in)
		assert.Equal(t, tt.text, text, "rune %#x", tt.in)
	}
}

func TestErrorHandler(t *testing.T) {
	var got error
	check, handle := errorHandler(func(err error) { got = err })

	base := errors.New("boom")
	func() {
		defer handle()
		check(nil, "fine")
		check(base, "allocimage")
		t.Fatal("check did not abort")
	}()
	require.Error(t, got)
	assert.ErrorIs(t, got, base)
	assert.Equal(t, "allocimage: boom", got.Error())

	assert.PanicsWithValue(t, "other", func() {
		defer handle()
		panic("other")
	})
}

func newPumpHost() (*Host, chan rune, chan error) {
	keys := make(chan rune)
	errch := make(chan error)
	h := &Host{
		Inputs:   make(chan Input, 1),
		Call:     make(chan func()),
		Done:     make(chan struct{}),
		stop:     make(chan struct{}),
		mousectl: &draw.Mousectl{C: make(chan draw.Mouse), Resize: make(chan bool)},
		keyctl:   &draw.Keyboardctl{C: keys},
	}
	return h, keys, errch
}

func TestPumpStopsWhileBlocked(t *testing.T) {
	h, keys, errch := newPumpHost()
	ended := make(chan struct{})
	go func() {
		h.pump(errch)
		close(ended)
	}()

	keys <- 'a'
	keys <- 'b' // Inputs is full, the pump blocks sending this one.
	close(h.stop)
	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not stop")
	}
	e := <-h.Inputs
	assert.Equal(t, InputKey, e.Type)
	assert.Equal(t, 'a', e.Key)
}

func TestDoneClosedOnce(t *testing.T) {
	h, _, errch := newPumpHost()
	go h.pump(errch)

	errch <- io.EOF
	select {
	case <-h.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("done not closed")
	}
	// Quitting after devdraw went away closes Done again.
	require.NotPanics(t, h.closeDone)
	require.NotPanics(t, h.closeDone)
}
