package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/application/ledger"
	"github.com/Khosrovf/Khosro8/pkg/jalali"
)

// TransactionHandler maneja el registro, anulación y listado de movimientos.
type TransactionHandler struct {
	uc *ledger.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar un movimiento de inventario
// @Description  Inserta el movimiento y ajusta la existencia del artículo en una sola transacción.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "item_id, type, quantity"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Void godoc
// @Summary      Anular un movimiento
// @Description  Marca la transacción como voided y revierte su efecto sobre la existencia.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/void [post]
func (h *TransactionHandler) Void(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	out, err := h.uc.Void(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  int     false  "Filtrar por artículo"
// @Param        from     query  string  false  "Desde (RFC3339, YYYY-MM-DD o YYYY/MM/DD jalali)"
// @Param        to       query  string  false  "Hasta (mismos formatos)"
// @Param        limit    query  int     false  "Límite"  default(50)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	in, err := parseListTransactionsQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseListTransactionsQuery arma el filtro de listado desde los query params.
// Compartido con el handler de reportes.
func parseListTransactionsQuery(c *fiber.Ctx) (dto.ListTransactionsRequest, error) {
	var in dto.ListTransactionsRequest
	in.Limit = c.QueryInt("limit", 0)
	in.Offset = c.QueryInt("offset", 0)
	if id := c.QueryInt("item_id", 0); id > 0 {
		v := int64(id)
		in.ItemID = &v
	}
	if s := c.Query("from"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			return in, err
		}
		in.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			return in, err
		}
		in.To = &t
	}
	return in, nil
}

// parseDateParam acepta RFC3339, fecha gregoriana YYYY-MM-DD o jalali YYYY/MM/DD.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return jalali.Parse(s)
}
