package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// ID identificador que el backend puede enviar como número o como string.
type ID string

// UnmarshalJSON acepta 12, "12" y null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emite los identificadores numéricos como número, el resto como string.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// CustomerResponse cliente tal como lo expone GET /api/clientes/.
type CustomerResponse struct {
	ID             ID     `json:"id"`
	DocumentTypeID ID     `json:"tipo_documento"`
	DocumentNumber string `json:"numero_documento"`
	FirstName      string `json:"nombre"`
	LastName       string `json:"apellido"`
	Email          string `json:"correo"`
	Phone          string `json:"telefono"`
}

// DocumentTypeResponse tipo de documento tal como lo expone GET /api/tipos-documento/.
type DocumentTypeResponse struct {
	ID   ID     `json:"id"`
	Name string `json:"nombre"`
}

// ToEntity convierte el DTO en entidad de dominio.
func (r CustomerResponse) ToEntity() entity.Customer {
	return entity.Customer{
		ID:             string(r.ID),
		DocumentTypeID: string(r.DocumentTypeID),
		DocumentNumber: r.DocumentNumber,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
	}
}

// ToEntity convierte el DTO en entidad de dominio.
func (r DocumentTypeResponse) ToEntity() entity.DocumentType {
	return entity.DocumentType{ID: string(r.ID), Name: r.Name}
}

// NewCustomerResponse construye el DTO de salida a partir de la entidad.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             ID(c.ID),
		DocumentTypeID: ID(c.DocumentTypeID),
		DocumentNumber: c.DocumentNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
	}
}

// NewDocumentTypeResponse construye el DTO de salida a partir de la entidad.
func NewDocumentTypeResponse(t *entity.DocumentType) DocumentTypeResponse {
	return DocumentTypeResponse{ID: ID(t.ID), Name: t.Name}
}
