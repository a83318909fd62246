package entity

// Customer representa un cliente del programa de fidelización.
// El backend es la fuente de verdad; el cliente nunca lo modifica localmente.
type Customer struct {
	ID             string
	DocumentTypeID string // referencia a DocumentType.ID
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
}

// DocumentType clasificación del documento de identidad (cédula, pasaporte, NIT...).
type DocumentType struct {
	ID   string
	Name string
}
