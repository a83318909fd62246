package memory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/memory"
)

func newRepo() *memory.CustomerRepo {
	return memory.NewCustomerRepository(memory.DefaultDocumentTypes(), memory.DefaultCustomers())
}

func lastNames(list []*entity.Customer) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.LastName)
	}
	return out
}

func TestList_SinFiltroOrdenaEnEspanol(t *testing.T) {
	list, err := newRepo().List(context.Background(), entity.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fernández", "Gómez", "La Ñapa", "Muñoz", "Núñez"}, lastNames(list))
}

func TestList_FiltraPorTipoYNumero(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	list, err := repo.List(ctx, entity.Filter{DocumentTypeID: "1"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, entity.Filter{DocumentTypeID: "1", DocumentNumber: "798"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Muñoz", list[0].LastName)
}

func TestList_NumeroSensibleAMayusculas(t *testing.T) {
	repo := newRepo()
	list, err := repo.List(context.Background(), entity.Filter{DocumentNumber: "ab12"})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = repo.List(context.Background(), entity.Filter{DocumentNumber: "AB12"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestList_DevuelveCopias(t *testing.T) {
	repo := newRepo()
	list, err := repo.List(context.Background(), entity.Filter{})
	require.NoError(t, err)
	list[0].FirstName = "mutado"

	again, err := repo.List(context.Background(), entity.Filter{})
	require.NoError(t, err)
	assert.NotEqual(t, "mutado", again[0].FirstName)
}

func TestNewCustomerRepository_AsignaIDs(t *testing.T) {
	repo := memory.NewCustomerRepository(nil, []entity.Customer{{FirstName: "Sin", LastName: "Id"}})
	list, err := repo.List(context.Background(), entity.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"tipos_documento": [{"id": 1, "nombre": "Cédula"}],
		"clientes": [{"id": 7, "tipo_documento": 1, "numero_documento": "123", "nombre": "Eva", "apellido": "Ruiz", "correo": "eva@x.co", "telefono": "1"}]
	}`), 0o644))

	repo, err := memory.LoadSeedFile(path)
	require.NoError(t, err)

	types, err := repo.ListDocumentTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*entity.DocumentType{{ID: "1", Name: "Cédula"}}, types)

	list, err := repo.List(context.Background(), entity.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "7", list[0].ID)
	assert.Equal(t, "1", list[0].DocumentTypeID)
}

func TestLoadSeedFile_Invalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[`), 0o644))
	_, err := memory.LoadSeedFile(path)
	assert.Error(t, err)
}
