package pui

// Focus changes between nested dialogs, and the closing of dialog chains
// they cause.

type focusAxis int

const (
	axisMouse focusAxis = iota
	axisKey
)

// IsDescendantDialog reports whether other is in the chain of children of
// ancestor. A nil other is never a descendant.
func IsDescendantDialog(ancestor, other Dialog) bool {
	if other == nil {
		return false
	}
	for d := ancestor.Child(); d != nil; d = d.Child() {
		if d == other {
			return true
		}
	}
	return false
}

func deepestChild(d Dialog) Dialog {
	for c := d.Child(); c != nil; c = d.Child() {
		d = c
	}
	return d
}

// PopupDialog marks d for rendering and puts it on top of the window,
// optionally giving it key focus.
func PopupDialog(d Dialog, w Window, giveKeyFocus bool) {
	d.Base().Dirty = true
	w.PushDialog(d)
	if giveKeyFocus {
		w.GainKeyFocus(d)
	}
}

// PopdownDialog removes d and all its children from the window. With
// allParents, parents are removed too, up to the first pinned one.
// Every removed dialog is cleaned up, and the references between it, its
// parent and its parent control are cleared.
func PopdownDialog(d Dialog, w Window, allParents bool) {
	var stop Dialog
	if !allParents {
		stop = d.Parent()
	}

	d = deepestChild(d)
	for {
		parent := d.Parent()
		parentC := d.ParentControl()
		b := d.Base()

		if b.PopCallback != nil {
			b.PopCallback(d, w, false)
		}
		w.PopDialog(d)
		if parentC != nil {
			parentC.LoseChild(d)
		}
		if parent != nil {
			if parent.Child() == d {
				parent.SetChild(nil)
			}

			// The parent control keeps key focus only if the mouse is on it.
			pb := parent.Base()
			if parentC != nil && pb.cKey == parentC && pb.cMouse != parentC {
				parentC.LoseKey(parent, w, nil, nil)
				pb.cKey = nil
			}
		}
		d.Cleanup()

		if parent == nil || parent == stop || parent.Base().Pinned {
			break
		}
		d = parent
	}
}

// GiveKeyFocusToParent moves key focus from d to its parent. A dialog
// without parent yields key focus and, unless pinned, is popped down.
func GiveKeyFocusToParent(d Dialog, w Window) {
	b := d.Base()
	parent := d.Parent()
	if parent == nil {
		traceEvent("dialog", "", "yields key focus", "tag", b.Tag)
		w.YieldKeyFocus(d)
		if !b.Pinned {
			traceEvent("dialog", "", "popping down", "tag", b.Tag)
			PopdownDialog(d, w, false)
		}
		return
	}
	if b.cKey != nil {
		b.cKey.LoseKey(d, w, nil, parent)
	}
	b.cKey = nil
	traceEvent("dialog", "", "yields key focus", "tag", b.Tag)
	w.YieldKeyFocus(d)
	traceEvent("dialog", "", "gains key focus", "tag", parent.Base().Tag)
	w.GainKeyFocus(parent)
}

// dropFocus clears d's focus on axis and tells the window. Losing mouse
// focus also loses key focus, as key focus follows the mouse.
func dropFocus(d Dialog, w Window, axis focusAxis, hint ActionHint, newC Control, newD Dialog) {
	b := d.Base()
	if axis == axisKey {
		if b.cKey != nil {
			b.cKey.Disarm(d, w, hint)
			b.cKey.LoseKey(d, w, newC, newD)
			b.cKey = nil
		}
		w.YieldKeyFocus(d)
		return
	}

	if b.cMouse != nil {
		b.cMouse.Disarm(d, w, HintNone)
		b.cMouse.LoseMouse(d, w, newC, newD)
		if b.cKey == b.cMouse {
			b.cMouse.LoseKey(d, w, newC, newD)
		}
	}
	if b.cKey != nil && b.cKey != b.cMouse {
		b.cKey.Disarm(d, w, HintNone)
		b.cKey.LoseKey(d, w, newC, newD)
	}
	b.cMouse = nil
	b.cKey = nil
	w.YieldMouseFocus(d)
	w.YieldKeyFocus(d)
}

// anchored reports whether d stays open when key focus leaves its chain.
func anchored(d Dialog, w Window) bool {
	b := d.Base()
	if b.Pinned || b.cMouse != nil || d == w.MouseFocus() {
		return true
	}
	parent := d.Parent()
	return parent != nil && parent.Base().cMouse == d.ParentControl()
}

// popUnanchored pops down dialogs from the deepest child of d upward,
// stopping at the first anchored one. It returns whether it stopped at d
// itself, leaving d open.
func popUnanchored(d Dialog, w Window) bool {
	deepest := deepestChild(d)
	for {
		if anchored(deepest, w) {
			return deepest == d
		}
		parent := deepest.Parent()
		traceEvent("dialog", "", "popping down", "tag", deepest.Base().Tag)
		PopdownDialog(deepest, w, false)
		if parent == nil {
			return false
		}
		deepest = parent
	}
}

// popUpward pops down d and its ancestors, stopping below the dialog
// gaining mouse focus or a pinned ancestor.
func popUpward(d Dialog, w Window, newD Dialog) {
	for {
		parent := d.Parent()
		if parent == nil || parent.Base().Pinned || parent == newD {
			traceEvent("dialog", "", "popping down", "tag", d.Base().Tag)
			PopdownDialog(d, w, false)
			return
		}
		d = parent
	}
}

// menuStaysOpen decides for a menu losing focus on axis whether it stays
// open. When the focus goes to the menu's own parent control, the menu's
// open child is closed.
func menuStaysOpen(d Dialog, w Window, axis focusAxis, newC Control, newD Dialog) bool {
	if newD != nil && IsDescendantDialog(d, newD) {
		return true
	}
	parent := d.Parent()
	parentC := d.ParentControl()

	if axis == axisMouse {
		if newC != nil && newD != nil {
			if newD == parent && newC == parentC {
				if child := d.Child(); child != nil && !child.Base().Pinned {
					traceEvent("dialog", "", "popping down", "tag", child.Base().Tag)
					PopdownDialog(child, w, false)
				}
				return true
			}
			// Note the pinned flag is not consulted for a focus change
			// to a control in an unrelated dialog.
			return false
		}
		return d.Base().Pinned
	}

	if (newC != nil && newD != nil && newD == parent && newC == parentC) ||
		(parent != nil && parentC != nil && parent.Base().cMouse == parentC) {
		child := d.Child()
		mouseD := w.MouseFocus()
		if child != nil && !child.Base().Pinned && (mouseD == nil || !IsDescendantDialog(d, mouseD)) {
			traceEvent("dialog", "", "popping down", "tag", child.Base().Tag)
			PopdownDialog(child, w, false)
		}
		return true
	}
	return d.Base().Pinned
}

// focusLeaves handles focus on axis leaving menu d for newC in newD.
// Either d stays open and drops its focus, or the chain it is in is
// closed as far as needed.
func focusLeaves(d Dialog, w Window, axis focusAxis, newC Control, newD Dialog) {
	if menuStaysOpen(d, w, axis, newC, newD) {
		dropFocus(d, w, axis, HintNone, newC, newD)
		return
	}
	if axis == axisMouse {
		popUpward(d, w, newD)
		return
	}
	if popUnanchored(d, w) {
		dropFocus(d, w, axisKey, HintNone, newC, newD)
	}
}

// menuWindowLosesMouse pops down a menu that is not pinned, with its
// parents up to a pinned one.
func menuWindowLosesMouse(d Dialog, w Window) {
	if d.Base().Pinned {
		dropFocus(d, w, axisMouse, HintNone, nil, nil)
		return
	}
	traceEvent("dialog", "", "popping down", "tag", d.Base().Tag)
	PopdownDialog(d, w, true)
}

// menuWindowLosesKey pops down the unanchored part of the chain below
// and including d. If d survives, it drops key focus.
func menuWindowLosesKey(d Dialog, w Window) {
	if popUnanchored(d, w) {
		dropFocus(d, w, axisKey, HintKey, nil, nil)
	}
}
