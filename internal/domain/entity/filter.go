package entity

import (
	"strings"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
)

// Filter estado efímero de filtros de la tabla. Campos vacíos = sin filtro.
type Filter struct {
	DocumentTypeID string
	DocumentNumber string
}

// IsEmpty indica si no hay ningún filtro aplicado.
func (f Filter) IsEmpty() bool {
	return f.DocumentTypeID == "" && f.DocumentNumber == ""
}

// ExportFormat formato de archivo para la exportación.
type ExportFormat string

// Formatos soportados por /api/download/.
const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatTXT  ExportFormat = "txt"
)

// ExportFormats en el orden en que se ofrecen al usuario.
var ExportFormats = []ExportFormat{FormatCSV, FormatXLSX, FormatTXT}

// ExportBaseName prefijo del archivo descargado.
const ExportBaseName = "usuarios_export"

// ParseExportFormat valida un formato ("CSV", " xlsx" también son aceptados).
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", domain.ErrInvalidFormat
	}
	return f, nil
}

// Valid indica si el formato es uno de los soportados.
func (f ExportFormat) Valid() bool {
	switch f {
	case FormatCSV, FormatXLSX, FormatTXT:
		return true
	}
	return false
}

// Extension devuelve la extensión del archivo; formatos desconocidos caen en csv.
func (f ExportFormat) Extension() string {
	if f.Valid() {
		return string(f)
	}
	return string(FormatCSV)
}

// Label etiqueta para mostrar en selectores.
func (f ExportFormat) Label() string {
	switch f {
	case FormatXLSX:
		return "Excel"
	case FormatTXT:
		return "TXT"
	default:
		return "CSV"
	}
}

// ContentType tipo MIME del payload exportado.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatTXT:
		return "text/plain; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ExportFilename nombre sugerido para el archivo descargado (usuarios_export.<ext>).
func (f ExportFormat) ExportFilename() string {
	return ExportBaseName + "." + f.Extension()
}

// ExportFile payload binario de una exportación junto al nombre sugerido.
type ExportFile struct {
	Name   string
	Format ExportFormat
	Data   []byte
}
