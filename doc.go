/*
Package pui is a small retained-mode toolkit for popup menus, nested submenus and information dialogs, drawn over an application's own window.

Start with NewStack on a Host: the Host draws and measures text, the Stack keeps the dialogs shown over it and routes input events to them. The drawhost and termhost packages have hosts for a plan9port devdraw window and for a terminal.

Dialogs are built in steps. A menu is started with StartSimpleMenu, filled with AddControl and laid out with Complete. An information dialog is started with StartSimpleInfo, filled with AddLabel and AddImage, and also finished with Complete. Show a dialog with PopupDialog, remove it with PopdownDialog. Removing a dialog also removes its open child menus.

Controls are Label, Image, PushButton and MenuButton. Menu buttons come in several kinds: plain (NewMenuButton), on/off (NewMenuToggle, NewMenuIndicator), an adjustable integer (NewMenuRangedInt) and one opening a child menu (NewSubmenuButton). A child menu is created when its button gains focus, and closed when focus moves outside the menu and its descendants.

# Focus

Every dialog tracks the control with mouse focus and the control with key focus, and the window tracks the dialog with each. Key focus follows the mouse. When focus moves to another dialog, the menu losing it decides whether to stay open. It stays open if the focus moved into one of its descendants or to the control that opened it, or if it is pinned. Otherwise it closes, together with its ancestors, up to a pinned one or the one that has focus now. Escape closes the deepest open menu and its parents, up to a pinned one.

Pinned dialogs, e.g. a menu bar, are never closed by focus changes or escape.

All event handling and callbacks run synchronously, from within the Stack's event methods. Nothing in this package is safe for concurrent use, except the Registry.

# Tracing

Set a logger with SetLogger to trace focus changes and actions at V(1), and rendering at V(2).
*/
package pui
