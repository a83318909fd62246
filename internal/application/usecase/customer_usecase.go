package usecase

import (
	"context"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/dto"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/repository"
)

// ExportGenerator puerto para serializar clientes (csv, xlsx, txt).
type ExportGenerator interface {
	Generate(format entity.ExportFormat, customers []*entity.Customer, typeNames map[string]string) ([]byte, error)
}

// CustomerUseCase casos de uso del backend simulado de clientes.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	generator ExportGenerator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, generator ExportGenerator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, generator: generator}
}

// List lista clientes con el filtro dado.
func (uc *CustomerUseCase) List(ctx context.Context, filter entity.Filter) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// DocumentTypes lista los tipos de documento.
func (uc *CustomerUseCase) DocumentTypes(ctx context.Context) ([]dto.DocumentTypeResponse, error) {
	types, err := uc.repo.ListDocumentTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.NewDocumentTypeResponse(t))
	}
	return out, nil
}

// Export genera el archivo con los clientes filtrados.
func (uc *CustomerUseCase) Export(ctx context.Context, filter entity.Filter, format entity.ExportFormat) (*entity.ExportFile, error) {
	if !format.Valid() {
		return nil, domain.ErrInvalidFormat
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	types, err := uc.repo.ListDocumentTypes(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	data, err := uc.generator.Generate(format, list, names)
	if err != nil {
		return nil, err
	}
	return &entity.ExportFile{Name: format.ExportFilename(), Format: format, Data: data}, nil
}
