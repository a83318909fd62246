package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tipos_documento (
	id     TEXT PRIMARY KEY,
	nombre TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS clientes (
	id                TEXT PRIMARY KEY,
	tipo_documento_id TEXT REFERENCES tipos_documento(id),
	numero_documento  TEXT NOT NULL,
	nombre            TEXT NOT NULL,
	apellido          TEXT NOT NULL DEFAULT '',
	correo            TEXT NOT NULL DEFAULT '',
	telefono          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS clientes_tipo_documento_idx ON clientes (tipo_documento_id);`

// EnsureSchema crea las tablas del backend simulado si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// SeedIfEmpty inserta los datos de ejemplo cuando la tabla clientes está vacía.
func SeedIfEmpty(ctx context.Context, q Querier, types []entity.DocumentType, customers []entity.Customer) (bool, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&n); err != nil {
		return false, fmt.Errorf("contar clientes: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	for _, t := range types {
		if _, err := q.Exec(ctx,
			`INSERT INTO tipos_documento (id, nombre) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			t.ID, t.Name,
		); err != nil {
			return false, fmt.Errorf("insert tipo_documento: %w", err)
		}
	}
	for _, c := range customers {
		if _, err := q.Exec(ctx, `
			INSERT INTO clientes (id, tipo_documento_id, numero_documento, nombre, apellido, correo, telefono)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`,
			c.ID, c.DocumentTypeID, c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone,
		); err != nil {
			return false, fmt.Errorf("insert cliente: %w", err)
		}
	}
	return true, nil
}
