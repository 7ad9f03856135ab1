// Package excel exporta los reportes del inventario como workbooks xlsx
// usando excelize. Consume las filas estructuradas del caso de uso de
// reportes; no conoce el store.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/application/report"
)

var _ report.ExcelExporter = (*Exporter)(nil)

// Exporter implementación de report.ExcelExporter sobre excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// TransactionsWorkbook genera la hoja "Transacciones" con una fila por movimiento.
func (e *Exporter) TransactionsWorkbook(rows []*dto.TransactionResponse) ([]byte, error) {
	const sheet = "Transacciones"
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Artículo", "Tipo", "Estado", "Número", "Fecha", "Fecha (jalali)", "Cantidad", "Delta", "Unidad", "Notas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado %s: %w", h, err)
		}
	}

	for i, r := range rows {
		values := []any{
			r.ID, r.ItemName, r.Type, r.Status, r.Number,
			r.Date.Format("2006-01-02 15:04"), r.DateJalali,
			r.Quantity.InexactFloat64(), r.Delta.InexactFloat64(),
			r.ItemUnit, r.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// StockWorkbook genera la hoja "Existencias" con una fila por artículo.
func (e *Exporter) StockWorkbook(items []*dto.ItemResponse) ([]byte, error) {
	const sheet = "Existencias"
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Nombre", "Categoría", "Unidad", "Existencia", "Precio", "Proveedor", "Notas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado %s: %w", h, err)
		}
	}

	for i, it := range items {
		values := []any{
			it.ID, it.Name, it.Category, it.Unit,
			it.Quantity.InexactFloat64(), it.Price.InexactFloat64(),
			it.Supplier, it.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}
