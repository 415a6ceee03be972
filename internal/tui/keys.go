package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Flip    key.Binding
	Reveal  key.Binding
	Shuffle key.Binding
	Reset   key.Binding
	View    key.Binding
	Editor  key.Binding
	Import  key.Binding
	Export  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "up"), key.WithHelp("←/↑", "previous")),
		Next:    key.NewBinding(key.WithKeys("right", "down"), key.WithHelp("→/↓", "next")),
		Flip:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "flip")),
		Reveal:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transliteration")),
		Shuffle: key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "shuffle")),
		Reset:   key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reset")),
		View:    key.NewBinding(key.WithKeys("v", "V"), key.WithHelp("v", "view")),
		Editor:  key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "manage")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) studyHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Flip, k.Reveal, k.Shuffle, k.Reset, k.View, k.Editor, k.Import, k.Export, k.Quit}
}

type editorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Close  key.Binding
	// form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Close:     key.NewBinding(key.WithKeys("esc", "m", "M"), key.WithHelp("esc/m", "close")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k editorKeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Close}
}

func (k editorKeyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.Cancel}
}
