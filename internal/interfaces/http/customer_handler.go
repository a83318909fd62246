package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/dto"
	"github.com/jhoicas/tabla-fidelizacion/internal/application/usecase"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/pkg/logger"
)

// legacyCSVFilename nombre fijo de la variante /api/download-csv/.
const legacyCSVFilename = "usuarios.csv"

// CustomerHandler maneja las peticiones HTTP de clientes del backend simulado.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

func filterFromQuery(c *fiber.Ctx) entity.Filter {
	return entity.Filter{
		DocumentTypeID: c.Query("tipo_documento"),
		DocumentNumber: c.Query("numero_documento"),
	}
}

// List GET /api/clientes/?tipo_documento=1&numero_documento=79
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(list)
}

// DocumentTypes GET /api/tipos-documento/
func (h *CustomerHandler) DocumentTypes(c *fiber.Ctx) error {
	types, err := h.uc.DocumentTypes(c.UserContext())
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(types)
}

// Download GET /api/download/?tipo_documento=&numero_documento=&formato=csv|xlsx|txt
func (h *CustomerHandler) Download(c *fiber.Ctx) error {
	format, err := entity.ParseExportFormat(c.Query("formato", string(entity.FormatCSV)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato debe ser csv, xlsx o txt"})
	}
	return h.sendExport(c, format, "")
}

// DownloadCSV GET /api/download-csv/ (variante fija, archivo usuarios.csv)
func (h *CustomerHandler) DownloadCSV(c *fiber.Ctx) error {
	return h.sendExport(c, entity.FormatCSV, legacyCSVFilename)
}

func (h *CustomerHandler) sendExport(c *fiber.Ctx, format entity.ExportFormat, filename string) error {
	file, err := h.uc.Export(c.UserContext(), filterFromQuery(c), format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: err.Error()})
		}
		return h.internal(c, err)
	}
	if filename == "" {
		filename = file.Name
	}
	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(file.Data)
}

func (h *CustomerHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
