package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/application/report"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler expone las vistas de reporte y sus descargas (xlsx/pdf).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Reporte de existencias
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Reporte de movimientos (más recientes primero)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  int     false  "Filtrar por artículo"
// @Param        from     query  string  false  "Desde"
// @Param        to       query  string  false  "Hasta"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) Transactions(c *fiber.Ctx) error {
	in, err := parseListTransactionsQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Transactions(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TransactionsExcel godoc
// @Summary      Descargar el reporte de movimientos como xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/transactions.xlsx [get]
func (h *ReportHandler) TransactionsExcel(c *fiber.Ctx) error {
	in, err := parseListTransactionsQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	b, err := h.uc.TransactionsExcel(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, b, xlsxMIME, fmt.Sprintf("transacciones-%s.xlsx", time.Now().Format("20060102")))
}

// StockExcel godoc
// @Summary      Descargar el reporte de existencias como xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/stock.xlsx [get]
func (h *ReportHandler) StockExcel(c *fiber.Ctx) error {
	b, err := h.uc.StockExcel(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, b, xlsxMIME, fmt.Sprintf("existencias-%s.xlsx", time.Now().Format("20060102")))
}

// TransactionsPDF godoc
// @Summary      Descargar el reporte de movimientos como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/transactions.pdf [get]
func (h *ReportHandler) TransactionsPDF(c *fiber.Ctx) error {
	in, err := parseListTransactionsQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	b, err := h.uc.TransactionsPDF(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, b, "application/pdf", fmt.Sprintf("transacciones-%s.pdf", time.Now().Format("20060102")))
}

func sendDownload(c *fiber.Ctx, body []byte, mime, filename string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(body)
}
