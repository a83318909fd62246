package repository

import (
	"context"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes del backend simulado.
type CustomerRepository interface {
	// List devuelve los clientes que cumplen el filtro; filtro vacío = todos.
	List(ctx context.Context, filter entity.Filter) ([]*entity.Customer, error)
	ListDocumentTypes(ctx context.Context) ([]*entity.DocumentType, error)
}
