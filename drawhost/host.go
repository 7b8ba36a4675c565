// Package drawhost shows pui dialogs in a devdraw window, through the
// 9fans.net/go/draw library.
package drawhost

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"9fans.net/go/draw"
	"github.com/go-logr/logr"

	"github.com/mjl-/pui"
)

type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
	InputError
)

// Input is an event read from devdraw, or a function to run in the event loop.
type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
	Error error
}

// ErrClosed is returned by Loop when the window was closed by the user.
var ErrClosed = errors.New("drawhost: window closed")

// Host is a pui.Host for a devdraw window. Its Stack holds the dialogs.
type Host struct {
	Display *draw.Display
	Stack   *pui.Stack
	Inputs  chan Input
	Call    chan func() // Functions sent here run in the event loop, for code that changes dialogs.
	Done    chan struct{}

	// Unhandled, if set, gets key and mouse events no dialog consumed.
	Unhandled func(e interface{})

	log     logr.Logger
	palette pui.Palette
	font    *draw.Font
	stipple image.Image
	colors  map[color.RGBA]*draw.Image
	images  map[imageKey]*draw.Image
	dirty   bool
	err     error
	closed  bool

	check  func(error, string)
	handle func()

	stop     chan struct{} // Closed by Close, ends the pump.
	doneOnce sync.Once
	mousectl *draw.Mousectl
	keyctl   *draw.Keyboardctl
	mouse    draw.Mouse
}

var _ pui.Host = &Host{}

// NewHost opens a window titled name, of size dim ("800x600"), with the
// palette's colors. An empty fontName uses the display's default font.
func NewHost(log logr.Logger, name, dim string, palette pui.Palette, fontName string) (*Host, error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", name, dim)
	if err != nil {
		return nil, fmt.Errorf("draw init: %w", err)
	}
	font := display.DefaultFont
	if fontName != "" {
		font, err = display.OpenFont(fontName)
		if err != nil {
			display.Close()
			return nil, fmt.Errorf("open font %s: %w", fontName, err)
		}
	}

	h := &Host{
		Display:  display,
		Inputs:   make(chan Input, 1),
		Call:     make(chan func(), 1),
		Done:     make(chan struct{}),
		log:      log.WithName("drawhost"),
		palette:  palette,
		font:     font,
		stipple:  pui.NewStipple(),
		colors:   map[color.RGBA]*draw.Image{},
		images:   map[imageKey]*draw.Image{},
		dirty:    true,
		stop:     make(chan struct{}),
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
	}
	h.check, h.handle = errorHandler(h.quit)
	h.Stack = pui.NewStack(h)

	go h.pump(errch)

	return h, nil
}

// pump moves devdraw events and calls into Inputs until stopped, or until
// devdraw goes away.
func (h *Host) pump(errch <-chan error) {
	send := func(e Input) bool {
		select {
		case h.Inputs <- e:
			return true
		case <-h.stop:
			return false
		}
	}
	for {
		var e Input
		select {
		case m := <-h.mousectl.C:
			e = Input{Type: InputMouse, Mouse: m}
		case k := <-h.keyctl.C:
			e = Input{Type: InputKey, Key: k}
		case <-h.mousectl.Resize:
			e = Input{Type: InputResize}
		case fn := <-h.Call:
			e = Input{Type: InputFunc, Func: fn}
		case <-h.stop:
			return
		case err := <-errch:
			if err == io.EOF {
				// devdraw is gone, typically because the window was closed.
				h.closeDone()
				return
			}
			e = Input{Type: InputError, Error: err}
		}
		if !send(e) {
			return
		}
	}
}

func (h *Host) closeDone() {
	h.doneOnce.Do(func() { close(h.Done) })
}

func (h *Host) Renderer() pui.Renderer {
	return renderer{h}
}

func (h *Host) Font() pui.Font {
	return drawFont{h.font}
}

func (h *Host) Stipple() image.Image {
	return h.stipple
}

func (h *Host) Color(role pui.ColorRole) color.RGBA {
	return h.palette.Color(role)
}

// SignalRedraw makes the event loop render after the current input.
func (h *Host) SignalRedraw() {
	h.dirty = true
}

// ForceQuit abandons the current input, closes the window and makes Loop
// return err. It does not return.
func (h *Host) ForceQuit(err error) {
	h.check(err, "pui")
}

func (h *Host) quit(err error) {
	if h.err != nil {
		return
	}
	if !errors.Is(err, ErrClosed) {
		h.log.Error(err, "quitting")
	}
	h.err = err
	h.Close()
	h.closeDone()
}

// Quit closes the window. Loop returns ErrClosed.
func (h *Host) Quit() {
	h.quit(ErrClosed)
}

// Size returns the size of the window.
func (h *Host) Size() image.Point {
	return h.Display.ScreenImage.R.Size()
}

// Err returns the error the host quit with, if any.
func (h *Host) Err() error {
	return h.err
}

// Render draws the dialogs if anything changed.
func (h *Host) Render() {
	defer h.handle()
	h.render()
}

func (h *Host) render() {
	if h.closed || !h.dirty && !h.Stack.Dirty() {
		return
	}
	screen := h.Display.ScreenImage
	screen.Draw(screen.R, h.colorImage(h.palette.Color(pui.ColorDialogBG)), nil, image.ZP)
	h.Stack.Render()
	h.dirty = false
	h.check(h.Display.Flush(), "flush")
}

// Input handles one input and renders.
func (h *Host) Input(e Input) {
	defer h.handle()

	switch e.Type {
	case InputMouse:
		h.mouseInput(e.Mouse)
	case InputKey:
		h.keyInput(e.Key)
	case InputResize:
		h.log.V(1).Info("resize")
		h.check(h.Display.Attach(draw.Refmesg), "attach after resize")
		h.Stack.RecreateTextures(false)
	case InputFunc:
		e.Func()
	case InputError:
		h.check(e.Error, "devdraw")
	}
	h.render()
}

// Loop handles inputs until the window is closed. It returns the error
// passed to ForceQuit, or ErrClosed.
func (h *Host) Loop() error {
	h.Render()
	for {
		select {
		case e := <-h.Inputs:
			h.Input(e)
		case <-h.Done:
			if h.err != nil {
				return h.err
			}
			return ErrClosed
		}
	}
}

func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	close(h.stop)
	h.freeImages()
	h.Display.Close()
}

func (h *Host) unhandled(e interface{}) {
	if h.Unhandled != nil {
		h.Unhandled(e)
	}
}
