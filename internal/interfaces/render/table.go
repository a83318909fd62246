package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/clientes"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// Headers columnas de la tabla en orden.
var Headers = []string{"Número de Documento", "Nombre", "Apellido", "Correo", "Teléfono"}

// Textos visibles.
const (
	NoResults   = "No se encontraron resultados."
	LoadingText = "Cargando usuarios..."
	ErrorPrefix = "Error al cargar datos: "
)

// Row fila del cuerpo de la tabla. Span > 1 indica una celda que ocupa varias columnas.
type Row struct {
	Cells []string
	Span  int
}

// Body convierte clientes en filas. Sin clientes devuelve una única fila
// placeholder que abarca todas las columnas.
func Body(customers []entity.Customer) []Row {
	if len(customers) == 0 {
		return []Row{{Cells: []string{NoResults}, Span: len(Headers)}}
	}
	rows := make([]Row, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, Row{
			Cells: []string{c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone},
			Span:  1,
		})
	}
	return rows
}

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle        = lipgloss.NewStyle().Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Italic(true).Faint(true).Align(lipgloss.Center)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Table dibuja la tabla con bordes. La fila placeholder se dibuja debajo del
// encabezado con el ancho completo de la tabla.
func Table(customers []entity.Customer) string {
	body := Body(customers)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if len(body) == 1 && body[0].Span > 1 {
		// lipgloss/table no soporta colspan: el mensaje va centrado al ancho de la tabla.
		head := strings.TrimRight(t.String(), "\n")
		return head + "\n" + placeholderStyle.Width(lipgloss.Width(head)).Render(body[0].Cells[0])
	}

	for _, r := range body {
		t.Row(r.Cells...)
	}
	return t.String()
}

// View texto completo según el estado: cargando, error (reemplaza la tabla) o tabla.
func View(s clientes.State) string {
	switch s.Status {
	case clientes.StatusLoading:
		return LoadingText
	case clientes.StatusError:
		msg := ""
		if s.Err != nil {
			msg = s.Err.Error()
		}
		return errorStyle.Render(ErrorPrefix + msg)
	default:
		return Table(s.Customers)
	}
}
