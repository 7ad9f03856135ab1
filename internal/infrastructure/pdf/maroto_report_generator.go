// Package pdf genera la representación imprimible del reporte de movimientos
// de inventario usando Maroto v2.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/application/report"
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// TransactionsReport genera el PDF del reporte de movimientos y devuelve sus bytes.
func (g *MarotoReportGenerator) TransactionsReport(rows []*dto.TransactionResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(10, "Reporte de movimientos de inventario", props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.4}))
	m.AddRows(headerRow())

	for _, r := range rows {
		m.AddRows(dataRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9}
	return row.New(7).Add(
		text.NewCol(1, "N°", bold),
		text.NewCol(3, "Artículo", bold),
		text.NewCol(2, "Tipo", bold),
		text.NewCol(2, "Fecha (jalali)", bold),
		text.NewCol(2, "Cantidad", bold),
		text.NewCol(2, "Referencia", bold),
	)
}

func dataRow(r *dto.TransactionResponse) core.Row {
	normal := props.Text{Size: 8}
	gray := props.Text{Size: 8, Color: colorGray}
	return row.New(5).Add(
		text.NewCol(1, fmt.Sprintf("%d", r.ID), normal),
		text.NewCol(3, r.ItemName, normal),
		text.NewCol(2, r.Type, normal),
		text.NewCol(2, r.DateJalali, normal),
		text.NewCol(2, r.Delta.String()+" "+r.ItemUnit, normal),
		text.NewCol(2, r.Number, gray),
	)
}
