package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-logr/logr"

	"github.com/mjl-/pui"
	"github.com/mjl-/pui/settings"
)

// Tags of the demo's dialogs and controls.
const (
	tagBar = iota + 1
	tagFile
	tagView
	tagMore
	tagAbout
	tagZoom
	tagGrid
	tagGridShown
)

// app is what the demo needs from a host.
type app interface {
	Size() image.Point
	Quit()
}

type demo struct {
	log   logr.Logger
	stack *pui.Stack
	host  app
	bar   *pui.SimpleMenu
}

// newDemo shows a pinned menu bar across the top of the window.
func newDemo(log logr.Logger, stack *pui.Stack, host app) *demo {
	d := &demo{log: log, stack: stack, host: host}

	bar := pui.StartSimpleMenu(nil, nil, false, true, d.pop, d.recreateBar, tagBar)
	bar.Pinned = true
	bar.AddControl(pui.NewSubmenuButton("File", pui.HalignLeft, d.fileMenu, pui.PlaceBelow, tagFile, false), 0)
	bar.AddControl(pui.NewSubmenuButton("View", pui.HalignLeft, d.viewMenu, pui.PlaceBelow, tagView, false), pui.MenuCanHide)
	bar.AddControl(pui.NewMenuButton("About", pui.HalignRight, d.about, tagAbout, false), pui.MenuEndGravity)
	bar.Complete(stack)
	d.bar = bar
	d.recreateBar(bar, stack, false)
	pui.PopupDialog(bar, stack, false)
	return d
}

func (d *demo) pop(dlg pui.Dialog, w pui.Window, up bool) {
	d.log.V(1).Info("pop", "tag", dlg.Base().Tag, "up", up)
}

// recreateBar stretches the bar over the width of the window.
func (d *demo) recreateBar(dlg pui.Dialog, w pui.Window, all bool) {
	bar := dlg.(*pui.SimpleMenu)
	size := image.Pt(d.host.Size().X, bar.NaturalSize(w).Y)
	bar.Resize(w, size)
	bar.MoveTo(image.ZP)
}

func (d *demo) submenu(parent pui.Dialog, c pui.Control, tag int) *pui.SimpleMenu {
	return pui.StartSimpleMenu(parent, c, true, true, d.pop, nil, tag)
}

func (d *demo) fileMenu(c pui.Control, parent pui.Dialog, w pui.Window, at image.Point) pui.Dialog {
	m := d.submenu(parent, c, tagFile)
	m.AddControl(pui.NewMenuButton("About...", pui.HalignLeft, d.about, tagAbout, false), 0)
	m.AddControl(pui.NewMenuButton("Save", pui.HalignLeft, nil, 0, true), 0)
	m.AddControl(pui.NewMenuButton("Quit", pui.HalignLeft, d.quit, 0, false), pui.MenuEndGravity)
	m.Complete(w)
	m.MoveTo(at)
	return m
}

func (d *demo) viewMenu(c pui.Control, parent pui.Dialog, w pui.Window, at image.Point) pui.Dialog {
	m := d.submenu(parent, c, tagView)
	indicator := pui.NewMenuIndicator("grid hidden", pui.HalignLeft, false, tagGridShown)
	toggle := func(c pui.Control, dlg pui.Dialog, w pui.Window) {
		on := c.(*pui.MenuButton).Toggled()
		indicator.SetToggled(dlg, w, on)
		caption := "grid hidden"
		if on {
			caption = "grid shown"
		}
		indicator.ChangeCaption(dlg, w, caption)
		d.log.Info("grid", "shown", on)
	}
	zoom := func(c pui.Control, dlg pui.Dialog, w pui.Window) {
		mb := c.(*pui.MenuButton)
		d.log.Info("zoom", "from", mb.OldValue(), "to", mb.Value())
	}
	m.AddControl(pui.NewMenuToggle("Grid", pui.HalignLeft, toggle, false, tagGrid, false), 0)
	m.AddControl(indicator, 0)
	m.AddControl(pui.NewMenuRangedInt("Zoom %d%%", pui.HalignLeft, zoom, 100, 25, 400, tagZoom, false), 0)
	m.AddControl(pui.NewSubmenuButton("More", pui.HalignLeft, d.moreMenu, pui.PlaceRight, tagMore, false), 0)
	m.Complete(w)
	m.MoveTo(at)
	return m
}

func (d *demo) moreMenu(c pui.Control, parent pui.Dialog, w pui.Window, at image.Point) pui.Dialog {
	m := d.submenu(parent, c, tagMore)
	for i := 1; i <= 3; i++ {
		m.AddControl(pui.NewMenuButton(fmt.Sprintf("Item %d", i), pui.HalignLeft, d.picked, i, false), 0)
	}
	m.Complete(w)
	m.MoveTo(at)
	return m
}

func (d *demo) picked(c pui.Control, dlg pui.Dialog, w pui.Window) {
	d.log.Info("picked", "tag", c.Tag())
	pui.PopdownDialog(dlg, w, true)
}

func (d *demo) quit(c pui.Control, dlg pui.Dialog, w pui.Window) {
	d.log.Info("quit from menu")
	d.host.Quit()
}

// about closes the open menus and shows build information.
func (d *demo) about(c pui.Control, dlg pui.Dialog, w pui.Window) {
	if dlg != pui.Dialog(d.bar) {
		pui.PopdownDialog(dlg, w, true)
	}

	v := settings.VersionInformation
	info := pui.StartSimpleInfo("OK", d.pop, nil, tagAbout)
	info.AddImage(logo(), pui.HalignMiddle, pui.SpaceXY(0, 4))
	info.AddLabel(settings.BinaryName, pui.HalignMiddle)
	info.AddLabel("version "+v.BuildVersion, pui.HalignLeft)
	info.AddLabel("commit "+v.Commit, pui.HalignLeft)
	info.Complete(w)

	size := info.Rect().Size()
	info.MoveTo(d.host.Size().Sub(size).Div(2))
	pui.PopupDialog(info, w, true)
}

// logo is a small gradient square.
func logo() image.Image {
	const n = 32
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 255 / n), uint8(y * 255 / n), 0xc0, 0xff})
		}
	}
	return img
}
