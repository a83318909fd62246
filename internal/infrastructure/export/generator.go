package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
)

// Columns encabezados de los archivos exportados.
var Columns = []string{"Tipo de Documento", "Número de Documento", "Nombre", "Apellido", "Correo", "Teléfono"}

const sheetName = "Clientes"

// Generator produce el payload de /api/download/ en el formato pedido.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate serializa los clientes. typeNames traduce DocumentTypeID a nombre legible.
func (g *Generator) Generate(format entity.ExportFormat, customers []*entity.Customer, typeNames map[string]string) ([]byte, error) {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, record(c, typeNames))
	}
	switch format {
	case entity.FormatCSV:
		return writeCSV(rows)
	case entity.FormatTXT:
		return writeTXT(rows)
	case entity.FormatXLSX:
		return writeXLSX(rows)
	default:
		return nil, domain.ErrInvalidFormat
	}
}

func record(c *entity.Customer, typeNames map[string]string) []string {
	typeName := typeNames[c.DocumentTypeID]
	if typeName == "" {
		typeName = c.DocumentTypeID
	}
	return []string{typeName, c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone}
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	// BOM para que Excel abra el CSV como UTF-8 (tildes en nombres).
	buf.WriteString("\ufeff")
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("csv encabezados: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv filas: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTXT(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	writeLine := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, c)
		}
		fmt.Fprintln(w)
	}
	writeLine(Columns)
	for _, r := range rows {
		writeLine(r)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("txt: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx hoja: %w", err)
	}
	if err := setRow(f, 1, Columns); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := setRow(f, i+2, r); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx celda: %w", err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("xlsx fila %d: %w", row, err)
	}
	return nil
}
