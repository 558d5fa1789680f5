package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	quit      key.Binding
	about     key.Binding
	back      key.Binding
	switchTab key.Binding
	toUpload  key.Binding
	toChat    key.Binding
	upload    key.Binding
	send      key.Binding
	copy      key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	about:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	switchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
	toUpload:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "upload")),
	toChat:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "chat")),
	upload:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "upload & index")),
	send:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy answer")),
}

// hotKeys renders bindings as "key: desc" pairs for the page footer.
func hotKeys(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " │ ")
}
