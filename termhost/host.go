// Package termhost shows pui dialogs in a terminal, through bubbletea.
//
// Dialogs still lay out in pixels. Each terminal cell is CellWidth by
// CellHeight pixels, text is measured in cells, and mouse positions are
// reported at the center of their cell.
package termhost

import (
	"context"
	"errors"
	"image"
	"image/color"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/mjl-/pui"
)

// ErrQuit is returned by Run when the user quit with ctrl-c or ctrl-q.
var ErrQuit = errors.New("termhost: quit")

// CallMsg runs its function in the event loop. Send it with
// tea.Program.Send from code that changes dialogs from another goroutine.
type CallMsg func()

// Host is a pui.Host for a terminal. Its Stack holds the dialogs.
type Host struct {
	Stack *pui.Stack
	Title string

	// Unhandled, if set, gets key and mouse events no dialog consumed.
	Unhandled func(e interface{})

	log     logr.Logger
	palette pui.Palette
	stipple image.Image
	grid    *grid
	view    string
	dirty   bool
	buttons int // Mouse buttons held.
	mouse   image.Point
	err     error
}

var _ pui.Host = &Host{}

// forceQuit is the panic value of ForceQuit, recovered by the event loop.
type forceQuit struct {
	err error
}

// NewHost returns a host for an 80x24 terminal until the terminal reports
// its size.
func NewHost(log logr.Logger, title string, palette pui.Palette) *Host {
	h := &Host{
		Title:   title,
		log:     log.WithName("termhost"),
		palette: palette,
		stipple: pui.NewStipple(),
		dirty:   true,
	}
	h.grid = newGrid(image.Pt(80, 24), palette.Color(pui.ColorDialogBG))
	h.Stack = pui.NewStack(h)
	return h
}

func (h *Host) Renderer() pui.Renderer {
	return renderer{h}
}

func (h *Host) Font() pui.Font {
	return cellFont{}
}

func (h *Host) Stipple() image.Image {
	return h.stipple
}

func (h *Host) Color(role pui.ColorRole) color.RGBA {
	return h.palette.Color(role)
}

func (h *Host) SignalRedraw() {
	h.dirty = true
}

// ForceQuit abandons the current message and ends the program, making Run
// return err. It does not return.
func (h *Host) ForceQuit(err error) {
	panic(forceQuit{err})
}

// Quit ends the program after the current message. Run returns ErrQuit.
func (h *Host) Quit() {
	h.quit(ErrQuit)
}

// Err returns the error the host quit with, if any.
func (h *Host) Err() error {
	return h.err
}

// Size returns the window size in pixels.
func (h *Host) Size() image.Point {
	return image.Pt(h.grid.size.X*CellWidth, h.grid.size.Y*CellHeight)
}

// Resize sets the terminal size in cells and has dialogs recreate their
// textures.
func (h *Host) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	h.grid = newGrid(image.Pt(cols, rows), h.palette.Color(pui.ColorDialogBG))
	h.dirty = true
	h.Stack.RecreateTextures(false)
}

// Render redraws the grid if anything changed and returns its text.
func (h *Host) Render() string {
	if h.dirty || h.Stack.Dirty() || h.view == "" {
		h.grid.clear(h.palette.Color(pui.ColorDialogBG))
		h.Stack.Render()
		h.view = h.grid.String()
		h.dirty = false
	}
	return h.view
}

// safeRender is Render for the view, which cannot end the program: a
// forced quit is recorded and ends it on the next message.
func (h *Host) safeRender() (s string) {
	defer func() {
		if e := recover(); e != nil {
			fq, ok := e.(forceQuit)
			if !ok {
				panic(e)
			}
			h.quit(fq.err)
			s = h.view
		}
	}()
	if h.err != nil {
		return h.view
	}
	return h.Render()
}

// Model returns the bubbletea model driving h.
func (h *Host) Model() tea.Model {
	return model{h}
}

// Run shows the dialogs until the user quits or the host is forced to quit.
func (h *Host) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(h.Model(), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return h.err
}

func (h *Host) quit(err error) {
	if h.err != nil {
		return
	}
	if !errors.Is(err, ErrQuit) {
		h.log.Error(err, "quitting")
	}
	h.err = err
}

func (h *Host) unhandled(e interface{}) {
	if h.Unhandled != nil {
		h.Unhandled(e)
	}
}

type model struct {
	h *Host
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (rm tea.Model, cmd tea.Cmd) {
	h := m.h
	defer func() {
		if e := recover(); e != nil {
			fq, ok := e.(forceQuit)
			if !ok {
				panic(e)
			}
			h.quit(fq.err)
			rm, cmd = m, tea.Quit
		}
	}()

	if h.err == nil {
		h.handle(msg)
		h.Render()
	}
	if h.err != nil {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() tea.View {
	v := tea.NewView(m.h.safeRender())
	v.AltScreen = true
	v.ReportFocus = true
	v.MouseMode = tea.MouseModeAllMotion
	v.WindowTitle = m.h.Title
	return v
}

func (h *Host) handle(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.log.V(1).Info("resize", "cols", msg.Width, "rows", msg.Height)
		h.Resize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		h.keyInput(msg.Key())
	case tea.MouseClickMsg:
		h.mouseButton(tea.Mouse(msg), true)
	case tea.MouseReleaseMsg:
		h.mouseButton(tea.Mouse(msg), false)
	case tea.MouseMotionMsg:
		h.mouseMotion(tea.Mouse(msg))
	case tea.MouseWheelMsg:
		h.mouseWheel(tea.Mouse(msg))
	case tea.BlurMsg:
		h.Stack.WindowLosesKey()
		h.Stack.WindowLosesMouse()
	case CallMsg:
		msg()
	}
}
