package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, COALESCE(tipo_documento_id, ''), numero_documento, nombre, apellido, correo, telefono`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List lista clientes aplicando solo los filtros no vacíos.
func (r *CustomerRepo) List(ctx context.Context, filter entity.Filter) ([]*entity.Customer, error) {
	query, args := buildListQuery(filter)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.DocumentTypeID, &c.DocumentNumber, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListDocumentTypes lista los tipos de documento.
func (r *CustomerRepo) ListDocumentTypes(ctx context.Context) ([]*entity.DocumentType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM tipos_documento ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tipos_documento: %w", err)
	}
	defer rows.Close()

	var list []*entity.DocumentType
	for rows.Next() {
		var t entity.DocumentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tipo_documento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// buildListQuery arma el SELECT con placeholders numerados; strpos mantiene la
// búsqueda de número de documento sensible a mayúsculas y sin comodines LIKE.
func buildListQuery(filter entity.Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.DocumentTypeID != "" {
		args = append(args, filter.DocumentTypeID)
		where = append(where, fmt.Sprintf("tipo_documento_id = $%d", len(args)))
	}
	if filter.DocumentNumber != "" {
		args = append(args, filter.DocumentNumber)
		where = append(where, fmt.Sprintf("strpos(numero_documento, $%d) > 0", len(args)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(customerColumns)
	sb.WriteString(" FROM clientes")
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY apellido, nombre")
	return sb.String(), args
}
