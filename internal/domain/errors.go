package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidFormat    = errors.New("formato de exportación inválido")
	ErrExportInProgress = errors.New("ya hay una exportación en curso")
	ErrHTTPStatus       = errors.New("respuesta HTTP no exitosa")
	ErrTransport        = errors.New("fallo de red")
	ErrDecode           = errors.New("respuesta con cuerpo inválido")
)
