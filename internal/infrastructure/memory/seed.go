package memory

import "github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"

// DefaultDocumentTypes tipos de documento de Colombia usados cuando no hay SEED_FILE.
func DefaultDocumentTypes() []entity.DocumentType {
	return []entity.DocumentType{
		{ID: "1", Name: "Cédula de ciudadanía"},
		{ID: "2", Name: "Cédula de extranjería"},
		{ID: "3", Name: "Pasaporte"},
		{ID: "4", Name: "NIT"},
	}
}

// DefaultCustomers datos de ejemplo del programa de fidelización.
func DefaultCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "1", DocumentTypeID: "1", DocumentNumber: "1020304050", FirstName: "Ana", LastName: "Gómez", Email: "ana.gomez@example.com", Phone: "3001234567"},
		{ID: "2", DocumentTypeID: "1", DocumentNumber: "79888777", FirstName: "Carlos", LastName: "Muñoz", Email: "carlos.munoz@example.com", Phone: "3157654321"},
		{ID: "3", DocumentTypeID: "3", DocumentNumber: "AB123456", FirstName: "Lucía", LastName: "Fernández", Email: "lucia.fernandez@example.com", Phone: "3209998877"},
		{ID: "4", DocumentTypeID: "2", DocumentNumber: "E-556677", FirstName: "Pedro", LastName: "Núñez", Email: "pedro.nunez@example.com", Phone: "3012223344"},
		{ID: "5", DocumentTypeID: "4", DocumentNumber: "900123456-7", FirstName: "Tiendas", LastName: "La Ñapa", Email: "contacto@lanapa.example.com", Phone: "6014445566"},
	}
}
