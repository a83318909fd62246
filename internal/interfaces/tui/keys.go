package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap atajos de la tabla de clientes.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding // tipo de documento / formato anterior
	Right     key.Binding // tipo de documento / formato siguiente
	Search    key.Binding
	Clear     key.Binding
	Export    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap atajos por defecto. Ninguno usa letras sueltas para no
// chocar con el campo de número de documento.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "campo siguiente")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "campo anterior")),
	Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "anterior")),
	Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "siguiente")),
	Search:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buscar")),
	Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "limpiar")),
	Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "exportar")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "salir")),
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.NextField, k.Search, k.Clear, k.Export, k.Quit}
}
