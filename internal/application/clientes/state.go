package clientes

import (
	"slices"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// Status estado de la carga de la lista de clientes.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State instantánea del estado de la tabla. Se trata como valor inmutable:
// las transiciones devuelven una copia nueva.
type State struct {
	Customers     []entity.Customer
	DocumentTypes []entity.DocumentType
	Filter        entity.Filter
	Format        entity.ExportFormat

	Status Status
	Err    error

	Exporting  bool
	ExportErr  error
	LastExport string // ruta del último archivo guardado

	// Seq número de la última carga emitida; solo esa puede modificar Customers.
	Seq uint64
}

// Loading atajo para la UI.
func (s State) Loading() bool { return s.Status == StatusLoading }

func initialState() State {
	return State{Format: entity.FormatCSV}
}

// clone copia los slices para que ningún suscriptor comparta memoria con el controlador.
func (s State) clone() State {
	s.Customers = slices.Clone(s.Customers)
	s.DocumentTypes = slices.Clone(s.DocumentTypes)
	return s
}

func startLoading(s State, seq uint64) State {
	s.Seq = seq
	s.Status = StatusLoading
	s.Err = nil
	return s
}

// loadSucceeded reemplaza la lista completa. Respuestas obsoletas (seq != s.Seq)
// se descartan; el bool indica si se aplicó.
func loadSucceeded(s State, seq uint64, rows []entity.Customer) (State, bool) {
	if seq != s.Seq {
		return s, false
	}
	s.Status = StatusSuccess
	s.Err = nil
	s.Customers = slices.Clone(rows)
	return s, true
}

func loadFailed(s State, seq uint64, err error) (State, bool) {
	if seq != s.Seq {
		return s, false
	}
	s.Status = StatusError
	s.Err = err
	return s, true
}

func startExport(s State) (State, bool) {
	if s.Exporting {
		return s, false
	}
	s.Exporting = true
	s.ExportErr = nil
	return s, true
}

func exportSucceeded(s State, path string) State {
	s.Exporting = false
	s.ExportErr = nil
	s.LastExport = path
	return s
}

func exportFailed(s State, err error) State {
	s.Exporting = false
	s.ExportErr = err
	return s
}
