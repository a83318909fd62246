package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/clientes"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/interfaces/render"
)

// Controller operaciones del controlador de clientes que usa la TUI.
type Controller interface {
	State() clientes.State
	Subscribe() (<-chan clientes.State, func())
	SetDocumentType(id string)
	SetDocumentNumber(number string)
	SetFormat(f entity.ExportFormat) error
	Load(ctx context.Context) error
	Search(ctx context.Context) error
	Clear(ctx context.Context) error
	LoadDocumentTypes(ctx context.Context)
	Export(ctx context.Context) (string, error)
}

type field int

const (
	fieldType field = iota
	fieldNumber
	fieldFormat
	fieldCount
)

// stateMsg entrega un estado nuevo del controlador por el loop de bubbletea.
type stateMsg struct {
	state clientes.State
}

const typePlaceholder = "Seleccionar tipo..."

var (
	labelStyle    = lipgloss.NewStyle().Faint(true)
	focusedStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// Model tabla interactiva de clientes. Todo el estado de datos vive en el
// controlador; el modelo solo guarda la última instantánea y el foco.
type Model struct {
	ctrl    Controller
	ctx     context.Context
	keys    KeyMap
	updates <-chan clientes.State
	cancel  func()

	state     clientes.State
	number    textinput.Model
	typeIndex int // 0 = sin tipo seleccionado
	focus     field
}

// NewModel construye el modelo y se suscribe al controlador.
// Close debe llamarse al terminar el programa.
func NewModel(ctx context.Context, ctrl Controller) Model {
	updates, cancel := ctrl.Subscribe()

	number := textinput.New()
	number.Placeholder = "Número de documento"
	number.CharLimit = 64
	number.Prompt = ""

	return Model{
		ctrl:    ctrl,
		ctx:     ctx,
		keys:    DefaultKeyMap,
		updates: updates,
		cancel:  cancel,
		state:   ctrl.State(),
		number:  number,
	}
}

// Close cancela la suscripción al controlador.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Init carga clientes y tipos de documento en paralelo y empieza a escuchar estados.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listenForState(m.updates),
		m.run(func(ctx context.Context) { _ = m.ctrl.Load(ctx) }),
		m.run(m.ctrl.LoadDocumentTypes),
	)
}

func listenForState(ch <-chan clientes.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg{state: s}
	}
}

// run ejecuta una operación del controlador fuera del loop de eventos;
// el resultado llega por la suscripción.
func (m Model) run(fn func(ctx context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		fn(ctx)
		return nil
	}
}

// Update implementa tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		if m.typeIndex > len(m.state.DocumentTypes) {
			m.typeIndex = 0
		}
		return m, listenForState(m.updates)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m, m.run(func(ctx context.Context) { _ = m.ctrl.Search(ctx) })

	case key.Matches(msg, m.keys.Clear):
		m.typeIndex = 0
		m.number.SetValue("")
		return m, m.run(func(ctx context.Context) { _ = m.ctrl.Clear(ctx) })

	case key.Matches(msg, m.keys.Export):
		if m.state.Exporting {
			return m, nil
		}
		// Se marca localmente para que la siguiente tecla no lance otra exportación
		// antes de que llegue el estado del controlador.
		m.state.Exporting = true
		return m, m.run(func(ctx context.Context) { _, _ = m.ctrl.Export(ctx) })

	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		step := 1
		if key.Matches(msg, m.keys.Left) {
			step = -1
		}
		switch m.focus {
		case fieldType:
			m.cycleType(step)
			return m, nil
		case fieldFormat:
			m.cycleFormat(step)
			return m, nil
		}
	}

	if m.focus == fieldNumber {
		var cmd tea.Cmd
		m.number, cmd = m.number.Update(msg)
		m.ctrl.SetDocumentNumber(m.number.Value())
		return m, cmd
	}
	return m, nil
}

func (m Model) setFocus(f field) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == fieldNumber {
		return m, m.number.Focus()
	}
	m.number.Blur()
	return m, nil
}

func (m *Model) cycleType(step int) {
	n := len(m.state.DocumentTypes) + 1
	m.typeIndex = ((m.typeIndex+step)%n + n) % n
	id := ""
	if m.typeIndex > 0 {
		id = m.state.DocumentTypes[m.typeIndex-1].ID
	}
	m.ctrl.SetDocumentType(id)
	m.state.Filter.DocumentTypeID = id
}

func (m *Model) cycleFormat(step int) {
	if m.state.Exporting {
		return
	}
	formats := entity.ExportFormats
	i := 0
	for j, f := range formats {
		if f == m.state.Format {
			i = j
		}
	}
	i = ((i+step)%len(formats) + len(formats)) % len(formats)
	if err := m.ctrl.SetFormat(formats[i]); err == nil {
		m.state.Format = formats[i]
	}
}

func (m Model) typeLabel() string {
	if m.typeIndex == 0 || m.typeIndex > len(m.state.DocumentTypes) {
		return typePlaceholder
	}
	return m.state.DocumentTypes[m.typeIndex-1].Name
}

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return focusedStyle.Render(text)
	}
	return text
}

// View implementa tea.Model. Cargando y error reemplazan toda la vista.
func (m Model) View() string {
	var b strings.Builder

	switch m.state.Status {
	case clientes.StatusLoading, clientes.StatusError:
		b.WriteString(render.View(m.state))
		b.WriteString("\n\n")
		b.WriteString(m.helpView())
		return b.String()
	}

	exportLabel := "Exportar"
	formatLabel := m.state.Format.Label()
	if m.state.Exporting {
		exportLabel = "..."
		formatLabel = disabledStyle.Render(formatLabel)
	}

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s   [%s]\n\n",
		labelStyle.Render("Tipo:"), m.label(fieldType, "‹ "+m.typeLabel()+" ›"),
		labelStyle.Render("Número:"), m.label(fieldNumber, "["+m.number.View()+"]"),
		labelStyle.Render("Formato:"), m.label(fieldFormat, "‹ "+formatLabel+" ›"),
		exportLabel,
	)
	b.WriteString(render.View(m.state))
	b.WriteString("\n")

	switch {
	case m.state.ExportErr != nil:
		b.WriteString(alertStyle.Render("No se pudo exportar el archivo: " + m.state.ExportErr.Error()))
		b.WriteString("\n")
	case m.state.LastExport != "":
		b.WriteString(noticeStyle.Render("Archivo guardado en " + m.state.LastExport))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
