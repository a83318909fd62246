package api

import (
	"net/url"
	"strings"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// Parámetros de consulta que entiende el backend.
const (
	ParamDocumentType   = "tipo_documento"
	ParamDocumentNumber = "numero_documento"
	ParamFormat         = "formato"
)

// BuildQuery traduce el filtro a parámetros de consulta. Los valores vacíos se omiten:
// nunca se envía un parámetro con string vacío.
func BuildQuery(filter entity.Filter) url.Values {
	q := url.Values{}
	if filter.DocumentTypeID != "" {
		q.Set(ParamDocumentType, filter.DocumentTypeID)
	}
	if filter.DocumentNumber != "" {
		q.Set(ParamDocumentNumber, filter.DocumentNumber)
	}
	return q
}

// BuildExportQuery igual que BuildQuery más el formato, que siempre se envía.
func BuildExportQuery(filter entity.Filter, format entity.ExportFormat) (url.Values, error) {
	if !format.Valid() {
		return nil, domain.ErrInvalidFormat
	}
	q := BuildQuery(filter)
	q.Set(ParamFormat, string(format))
	return q, nil
}

// ResolveURL une base, ruta y query. Sin parámetros no se agrega "?".
func ResolveURL(base, path string, q url.Values) string {
	u := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
