// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	top           key.Binding
	bottom        key.Binding
	left          key.Binding
	right         key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	add           key.Binding
	toggle        key.Binding
	priority      key.Binding
	delete        key.Binding
	copyURL       key.Binding
	showCompleted key.Binding
	refresh       key.Binding
	sync          key.Binding
	fullSync      key.Binding
	help          key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	top:           key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	bottom:        key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "lists")),
	right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "tasks")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	add:           key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
	toggle:        key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done/undo")),
	priority:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
	delete:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	copyURL:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
	showCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show completed")),
	refresh:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	sync:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	fullSync:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "full sync")),
	help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	yes:           key.NewBinding(key.WithKeys("y", "enter")),
	no:            key.NewBinding(key.WithKeys("n", "esc")),
}

// helpLines is the key reference shown in the help overlay.
func helpLines() []key.Binding {
	return []key.Binding{
		keys.up, keys.down, keys.top, keys.bottom, keys.tab, keys.left, keys.right,
		keys.add, keys.toggle, keys.priority, keys.delete, keys.copyURL,
		keys.showCompleted, keys.refresh, keys.sync, keys.fullSync, keys.help, keys.quit,
	}
}
