package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/usecase"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/memory"
)

type recordingGenerator struct {
	format    entity.ExportFormat
	customers []*entity.Customer
	typeNames map[string]string
}

func (g *recordingGenerator) Generate(format entity.ExportFormat, customers []*entity.Customer, typeNames map[string]string) ([]byte, error) {
	g.format, g.customers, g.typeNames = format, customers, typeNames
	return []byte("ok"), nil
}

type failingRepo struct{}

func (failingRepo) List(context.Context, entity.Filter) ([]*entity.Customer, error) {
	return nil, errors.New("sin conexión")
}

func (failingRepo) ListDocumentTypes(context.Context) ([]*entity.DocumentType, error) {
	return nil, errors.New("sin conexión")
}

func newUseCase(gen usecase.ExportGenerator) *usecase.CustomerUseCase {
	repo := memory.NewCustomerRepository(memory.DefaultDocumentTypes(), memory.DefaultCustomers())
	return usecase.NewCustomerUseCase(repo, gen)
}

func TestCustomerUseCase_ListFiltra(t *testing.T) {
	uc := newUseCase(&recordingGenerator{})

	list, err := uc.List(context.Background(), entity.Filter{DocumentTypeID: "3"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "AB123456", list[0].DocumentNumber)
	assert.Equal(t, "Fernández", list[0].LastName)
}

func TestCustomerUseCase_DocumentTypes(t *testing.T) {
	uc := newUseCase(&recordingGenerator{})

	types, err := uc.DocumentTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, len(memory.DefaultDocumentTypes()))
}

func TestCustomerUseCase_ExportUsaNombresDeTipo(t *testing.T) {
	gen := &recordingGenerator{}
	uc := newUseCase(gen)

	file, err := uc.Export(context.Background(), entity.Filter{DocumentNumber: "AB"}, entity.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "usuarios_export.xlsx", file.Name)
	assert.Equal(t, []byte("ok"), file.Data)
	assert.Equal(t, entity.FormatXLSX, gen.format)
	require.Len(t, gen.customers, 1)
	assert.Equal(t, "Pasaporte", gen.typeNames["3"])
}

func TestCustomerUseCase_ExportFormatoInvalido(t *testing.T) {
	gen := &recordingGenerator{}
	uc := newUseCase(gen)

	_, err := uc.Export(context.Background(), entity.Filter{}, entity.ExportFormat("pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Nil(t, gen.customers, "no se genera nada")
}

func TestCustomerUseCase_PropagaErrorDelRepositorio(t *testing.T) {
	uc := usecase.NewCustomerUseCase(failingRepo{}, &recordingGenerator{})

	_, err := uc.List(context.Background(), entity.Filter{})
	assert.Error(t, err)
	_, err = uc.Export(context.Background(), entity.Filter{}, entity.FormatCSV)
	assert.Error(t, err)
}
