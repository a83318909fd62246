package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/clientes"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/interfaces/render"
)

func customers(n int) []entity.Customer {
	out := make([]entity.Customer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Customer{
			ID:             string(rune('a' + i)),
			DocumentNumber: strings.Repeat("9", i+1),
			FirstName:      "Nombre" + string(rune('A'+i)),
			LastName:       "Apellido" + string(rune('A'+i)),
			Email:          "c" + string(rune('a'+i)) + "@example.com",
			Phone:          "300000000" + string(rune('0'+i)),
		})
	}
	return out
}

func TestBody_UnaFilaPorCliente(t *testing.T) {
	for _, n := range []int{1, 3, 7} {
		list := customers(n)
		rows := render.Body(list)
		require.Len(t, rows, n)
		for i, r := range rows {
			c := list[i]
			assert.Equal(t, []string{c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone}, r.Cells)
			assert.Equal(t, 1, r.Span)
		}
	}
}

func TestBody_SinResultados(t *testing.T) {
	rows := render.Body(nil)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{render.NoResults}, rows[0].Cells)
	assert.Equal(t, len(render.Headers), rows[0].Span, "el placeholder abarca todas las columnas")
}

func TestTable_ContieneEncabezadosYCeldas(t *testing.T) {
	out := render.Table(customers(2))
	for _, h := range render.Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "NombreA")
	assert.Contains(t, out, "cb@example.com")
	assert.NotContains(t, out, render.NoResults)
}

func TestTable_Vacia(t *testing.T) {
	out := render.Table(nil)
	assert.Contains(t, out, render.Headers[0])
	assert.Contains(t, out, render.NoResults)
}

func TestView_SegunEstado(t *testing.T) {
	assert.Equal(t, render.LoadingText, render.View(clientes.State{Status: clientes.StatusLoading}))

	errView := render.View(clientes.State{
		Status:    clientes.StatusError,
		Err:       errors.New("Error HTTP: 404 Not Found"),
		Customers: customers(1),
	})
	assert.Contains(t, errView, "404")
	assert.Contains(t, errView, render.ErrorPrefix)
	assert.NotContains(t, errView, render.Headers[0], "la tabla no se dibuja en estado de error")

	ok := render.View(clientes.State{Status: clientes.StatusSuccess, Customers: customers(1)})
	assert.Contains(t, ok, "NombreA")
}
