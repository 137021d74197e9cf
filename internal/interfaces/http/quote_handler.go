package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/quoting"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// QuoteHandler maneja el ciclo de vida de cotizaciones (protegido).
type QuoteHandler struct {
	uc    *quoting.QuoteUseCase
	pdfUC *quoting.PDFUseCase
	log   *logger.Logger
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *quoting.QuoteUseCase, pdfUC *quoting.PDFUseCase, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdfUC: pdfUC, log: log}
}

// Create godoc
// @Summary      Crear cotización en estado DRAFT
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "client_name o customer_id"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_name es requerido"})
		}
		return respondInternal(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización con sus líneas
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrQuoteNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return respondInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones (solo cabeceras)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar ítem del catálogo y recalcular (operación atómica)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cotización"
// @Param        body  body  dto.AddQuoteItemRequest  true  "part_code, quantity"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AddQuoteItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PartCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "part_code es requerido"})
	}
	if err := h.uc.AddItem(c.Context(), id, in.PartCode, in.Quantity); err != nil {
		switch err {
		case domain.ErrQuoteNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado en el catálogo"})
		}
		return respondInternal(c, h.log, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// Recalculate godoc
// @Summary      Recalcular precios y totales con margen/impuesto opcionales
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cotización"
// @Param        body  body  dto.RecalculateRequest  true  "margin, tax_rate (opcionales)"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/recalculate [post]
func (h *QuoteHandler) Recalculate(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.RecalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Recalculate(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrQuoteNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return respondInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar línea y recalcular (operación atómica)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la cotización"
// @Param        itemId  path  string  true  "ID de la línea"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items/{itemId} [delete]
func (h *QuoteHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	itemID := c.Params("itemId")
	if err := h.uc.DeleteItem(c.Context(), itemID, id); err != nil {
		if err == domain.ErrQuoteNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return respondInternal(c, h.log, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cotización y sus líneas
// @Tags         quotes
// @Security     Bearer
// @Param        id   path  string  true  "ID de la cotización"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrQuoteNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return respondInternal(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar la cotización en PDF
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	raw, filename, err := h.pdfUC.Generate(c.Context(), id)
	if err != nil {
		if err == domain.ErrQuoteNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return respondInternal(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
