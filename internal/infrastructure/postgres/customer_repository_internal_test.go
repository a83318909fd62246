package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

func TestBuildListQuery(t *testing.T) {
	cases := []struct {
		name      string
		filter    entity.Filter
		wantWhere string
		wantArgs  []any
	}{
		{"sin filtros", entity.Filter{}, "", nil},
		{"tipo", entity.Filter{DocumentTypeID: "1"}, " WHERE tipo_documento_id = $1", []any{"1"}},
		{"número", entity.Filter{DocumentNumber: "79"}, " WHERE strpos(numero_documento, $1) > 0", []any{"79"}},
		{"ambos", entity.Filter{DocumentTypeID: "1", DocumentNumber: "79"},
			" WHERE tipo_documento_id = $1 AND strpos(numero_documento, $2) > 0", []any{"1", "79"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := buildListQuery(tc.filter)
			want := "SELECT " + customerColumns + " FROM clientes" + tc.wantWhere + " ORDER BY apellido, nombre"
			assert.Equal(t, want, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
