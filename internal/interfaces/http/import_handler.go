package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/catalog"
	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// ImportHandler maneja la carga de listas de precios XLSX (solo ADMIN).
type ImportHandler struct {
	uc  *catalog.ImportUseCase
	log *logger.Logger
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *catalog.ImportUseCase, log *logger.Logger) *ImportHandler {
	return &ImportHandler{uc: uc, log: log}
}

// Import godoc
// @Summary      Importar lista de precios XLSX (solo ADMIN)
// @Tags         catalog
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Archivo XLSX"
// @Param        oem   formData  string  false  "Nombre del OEM/proveedor"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo 'file' es requerido"})
	}
	vendor := c.FormValue("oem")

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	result, err := h.uc.ImportPriceList(c.Context(), f, vendor)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: "archivo XLSX inválido"})
		}
		return respondInternal(c, h.log, err)
	}

	h.log.Info().
		Str("file", fileHeader.Filename).
		Str("vendor", vendor).
		Int("imported", result.Imported).
		Int("errors", result.Errors).
		Msg("importación de lista de precios completada")

	return c.JSON(result)
}
