package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Menu        key.Binding
	Submit      key.Binding
	Back        key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	SwitchAuth  key.Binding
	Toggle      key.Binding
	MinutesUp   key.Binding
	MinutesDown key.Binding
	Erase       key.Binding
	Edit        key.Binding
	Save        key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Menu:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "menu")),
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	NextField:   key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓", "next field")),
	PrevField:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "prev field")),
	SwitchAuth:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "register")),
	Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start/stop")),
	MinutesUp:   key.NewBinding(key.WithKeys("up", "+"), key.WithHelp("↑/+", "minute up")),
	MinutesDown: key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "minute down")),
	Erase:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase digit")),
	Edit:        key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
	Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
}
