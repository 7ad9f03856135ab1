// Package report expone las vistas de solo lectura del libro de inventario y
// sus exportaciones (Excel/PDF). Los colaboradores de exportación reciben
// filas estructuradas: nunca tocan el store por dentro.
package report

import (
	"context"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
)

// ExcelExporter puerto de exportación a hoja de cálculo.
type ExcelExporter interface {
	TransactionsWorkbook(rows []*dto.TransactionResponse) ([]byte, error)
	StockWorkbook(items []*dto.ItemResponse) ([]byte, error)
}

// PDFGenerator puerto de exportación a PDF.
type PDFGenerator interface {
	TransactionsReport(rows []*dto.TransactionResponse) ([]byte, error)
}

// ReportUseCase proyecciones de lectura para presentación y exportación.
// Cada consulta corre en una sola sentencia SQL: el snapshot que da una
// consulta individual es suficiente consistencia para los reportes.
type ReportUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
	excel    ExcelExporter
	pdf      PDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	excel ExcelExporter,
	pdf PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, txRepo: txRepo, excel: excel, pdf: pdf}
}

// Stock reporte de existencias: todos los artículos con su cantidad actual.
func (uc *ReportUseCase) Stock(ctx context.Context) ([]*dto.ItemResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		list = append(list, dto.ToItemResponse(it))
	}
	return list, nil
}

// Transactions reporte de movimientos unidos con el artículo, fecha descendente.
func (uc *ReportUseCase) Transactions(ctx context.Context, in dto.ListTransactionsRequest) ([]*dto.TransactionResponse, error) {
	in.DefaultPage()
	rows, err := uc.txRepo.ListWithItem(ctx, repository.TransactionFilter{
		ItemID: in.ItemID,
		From:   in.From,
		To:     in.To,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}
	list := make([]*dto.TransactionResponse, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.ToTransactionWithItemResponse(r))
	}
	return list, nil
}

// TransactionsExcel exporta el reporte de movimientos como workbook xlsx.
func (uc *ReportUseCase) TransactionsExcel(ctx context.Context, in dto.ListTransactionsRequest) ([]byte, error) {
	rows, err := uc.Transactions(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.excel.TransactionsWorkbook(rows)
}

// StockExcel exporta el reporte de existencias como workbook xlsx.
func (uc *ReportUseCase) StockExcel(ctx context.Context) ([]byte, error) {
	items, err := uc.Stock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.excel.StockWorkbook(items)
}

// TransactionsPDF exporta el reporte de movimientos como PDF.
func (uc *ReportUseCase) TransactionsPDF(ctx context.Context, in dto.ListTransactionsRequest) ([]byte, error) {
	rows, err := uc.Transactions(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.TransactionsReport(rows)
}
