package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/dto"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// Seed contenido del archivo SEED_FILE: mismo formato JSON que expone la API.
type Seed struct {
	DocumentTypes []dto.DocumentTypeResponse `json:"tipos_documento"`
	Customers     []dto.CustomerResponse     `json:"clientes"`
}

// CustomerRepo store en memoria de solo lectura para el backend simulado.
type CustomerRepo struct {
	mu        sync.RWMutex
	customers []*entity.Customer
	types     []*entity.DocumentType
}

// NewCustomerRepository construye el store con los datos dados (copiados).
// Clientes sin ID reciben un UUID.
func NewCustomerRepository(types []entity.DocumentType, customers []entity.Customer) *CustomerRepo {
	r := &CustomerRepo{}
	for _, t := range types {
		t := t
		r.types = append(r.types, &t)
	}
	for _, c := range customers {
		c := c
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		r.customers = append(r.customers, &c)
	}
	sortCustomers(r.customers)
	return r
}

// LoadSeedFile lee un Seed desde disco.
func LoadSeedFile(path string) (*CustomerRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer seed: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("seed inválido: %w", err)
	}
	types := make([]entity.DocumentType, 0, len(seed.DocumentTypes))
	for _, t := range seed.DocumentTypes {
		types = append(types, t.ToEntity())
	}
	customers := make([]entity.Customer, 0, len(seed.Customers))
	for _, c := range seed.Customers {
		customers = append(customers, c.ToEntity())
	}
	return NewCustomerRepository(types, customers), nil
}

// List filtra por tipo (igualdad) y número de documento (subcadena, sensible a mayúsculas).
func (r *CustomerRepo) List(ctx context.Context, filter entity.Filter) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if filter.DocumentTypeID != "" && c.DocumentTypeID != filter.DocumentTypeID {
			continue
		}
		if filter.DocumentNumber != "" && !strings.Contains(c.DocumentNumber, filter.DocumentNumber) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// ListDocumentTypes devuelve los tipos en el orden del seed.
func (r *CustomerRepo) ListDocumentTypes(ctx context.Context) ([]*entity.DocumentType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.DocumentType, 0, len(r.types))
	for _, t := range r.types {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

// sortCustomers ordena por apellido y nombre con intercalación española (Ñ después de N, tildes ignoradas).
func sortCustomers(list []*entity.Customer) {
	col := collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics)
	slices.SortStableFunc(list, func(a, b *entity.Customer) int {
		if c := col.CompareString(a.LastName, b.LastName); c != 0 {
			return c
		}
		return col.CompareString(a.FirstName, b.FirstName)
	})
}
