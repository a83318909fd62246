package clientes

import (
	"context"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// CustomerAPI puerto de salida hacia el backend de clientes.
// La implementación concreta es api.Client; en tests se inyecta un fake.
type CustomerAPI interface {
	ListCustomers(ctx context.Context, filter entity.Filter) ([]entity.Customer, error)
	ListDocumentTypes(ctx context.Context) ([]entity.DocumentType, error)
	Export(ctx context.Context, filter entity.Filter, format entity.ExportFormat) (*entity.ExportFile, error)
}

// FileSaver materializa un archivo descargado (SaveFile(bytes, nombre sugerido)).
// Devuelve la ubicación final del archivo.
type FileSaver interface {
	SaveFile(ctx context.Context, data []byte, suggestedName string) (string, error)
}
