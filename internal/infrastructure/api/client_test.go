package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/api"
)

// ──────────────────────────────────────────────────────────────────────────────
// Query builder
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildQuery_OmiteVacios(t *testing.T) {
	cases := []struct {
		name   string
		filter entity.Filter
		want   []string
	}{
		{"sin filtros", entity.Filter{}, nil},
		{"solo tipo", entity.Filter{DocumentTypeID: "2"}, []string{api.ParamDocumentType}},
		{"solo número", entity.Filter{DocumentNumber: "123"}, []string{api.ParamDocumentNumber}},
		{"ambos", entity.Filter{DocumentTypeID: "1", DocumentNumber: "99"}, []string{api.ParamDocumentType, api.ParamDocumentNumber}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := api.BuildQuery(tc.filter)
			assert.Len(t, q, len(tc.want))
			for _, k := range tc.want {
				assert.NotEmpty(t, q.Get(k), "%s debe estar presente", k)
			}
			for k, v := range q {
				assert.NotEqual(t, []string{""}, v, "%s no debe enviarse vacío", k)
			}
		})
	}
}

func TestBuildExportQuery_SiempreEnviaFormato(t *testing.T) {
	q, err := api.BuildExportQuery(entity.Filter{}, entity.FormatTXT)
	require.NoError(t, err)
	assert.Equal(t, url.Values{api.ParamFormat: {"txt"}}, q)

	_, err = api.BuildExportQuery(entity.Filter{}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "http://h:8000/api/clientes/", api.ResolveURL("http://h:8000/", "/api/clientes/", nil))
	assert.Equal(t,
		"http://h:8000/api/clientes/?numero_documento=10+20&tipo_documento=1",
		api.ResolveURL("http://h:8000", api.PathCustomers, api.BuildQuery(entity.Filter{DocumentTypeID: "1", DocumentNumber: "10 20"})),
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Client
// ──────────────────────────────────────────────────────────────────────────────

func newTestClient(t *testing.T, h http.HandlerFunc) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 5*time.Second, nil), srv
}

func TestListCustomers_DecodificaYEnviaFiltros(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, api.PathCustomers, r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "tipo_documento": 2, "numero_documento": "AB1", "nombre": "Ana", "apellido": "Gómez", "correo": "ana@x.co", "telefono": "300"},
			{"id": "u-2", "tipo_documento": null, "numero_documento": "77", "nombre": "Luis", "apellido": "Pérez", "correo": "luis@x.co", "telefono": "310"}
		]`))
	})

	list, err := c.ListCustomers(context.Background(), entity.Filter{DocumentTypeID: "2"})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, url.Values{"tipo_documento": {"2"}}, gotQuery)
	assert.Equal(t, entity.Customer{
		ID: "1", DocumentTypeID: "2", DocumentNumber: "AB1",
		FirstName: "Ana", LastName: "Gómez", Email: "ana@x.co", Phone: "300",
	}, list[0])
	assert.Equal(t, "u-2", list[1].ID)
	assert.Empty(t, list[1].DocumentTypeID)
}

func TestListCustomers_SinFiltrosNoEnviaQuery(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	})
	list, err := c.ListCustomers(context.Background(), entity.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListCustomers_ErrorHTTP(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", code)
		})
		_, err := c.ListCustomers(context.Background(), entity.Filter{})
		require.Error(t, err)

		var httpErr *api.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, code, httpErr.StatusCode)
		assert.Equal(t, http.StatusText(code), httpErr.Status)
		assert.ErrorIs(t, err, domain.ErrHTTPStatus)
		assert.Contains(t, err.Error(), "Error HTTP:")
		assert.Contains(t, err.Error(), http.StatusText(code))
	}
}

func TestListCustomers_CuerpoInvalido(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{no es json`))
	})
	_, err := c.ListCustomers(context.Background(), entity.Filter{})
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestListCustomers_FalloDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := api.NewClient(base, time.Second, nil)
	_, err := c.ListCustomers(context.Background(), entity.Filter{})
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestListDocumentTypes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, api.PathDocumentTypes, r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": 1, "nombre": "Cédula de ciudadanía"}, {"id": 2, "nombre": "Pasaporte"}]`))
	})
	types, err := c.ListDocumentTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.DocumentType{{ID: "1", Name: "Cédula de ciudadanía"}, {ID: "2", Name: "Pasaporte"}}, types)
}

func TestExport_DevuelvePayloadYNombre(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, api.PathExport, r.URL.Path)
		assert.Equal(t, "xlsx", r.URL.Query().Get("formato"))
		assert.Equal(t, "55", r.URL.Query().Get("numero_documento"))
		_, _ = w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
	})
	file, err := c.Export(context.Background(), entity.Filter{DocumentNumber: "55"}, entity.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "usuarios_export.xlsx", file.Name)
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, file.Data)
}

func TestExport_FormatoInvalidoNoHacePeticion(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	_, err := c.Export(context.Background(), entity.Filter{}, "pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.False(t, called)
}
