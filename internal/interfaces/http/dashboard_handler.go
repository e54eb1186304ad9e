package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bi-inventario/internal/application/analytics"
	"github.com/jhoicas/bi-inventario/internal/application/dto"
	"github.com/jhoicas/bi-inventario/internal/domain"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
)

// DashboardHandler maneja los endpoints JSON y de exportación del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Upload godoc
// @Summary      Cargar archivo de inventario
// @Description  Recibe un .xlsx (primera hoja) o texto separado por comas y reemplaza el archivo de la sesión.
// @Tags         dashboard
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo de inventario"
// @Success      200   {object}  dto.DashboardDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/dashboard/upload [post]
func (h *DashboardHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo file es requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	out, err := h.uc.Upload(c.Context(), GetSessionID(c), fh.Filename, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Dashboard del archivo vigente
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Descartar el archivo vigente
// @Tags         dashboard
// @Success      204
// @Router       /api/dashboard [delete]
func (h *DashboardHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context(), GetSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Chart godoc
// @Summary      Gráfico del dashboard
// @Tags         dashboard
// @Produce      image/svg+xml
// @Produce      image/png
// @Param        name  path  string  true  "valor-por-categoria | stock-por-producto | cobertura"
// @Param        ext   path  string  true  "svg | png"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/charts/{name}.{ext} [get]
func (h *DashboardHandler) Chart(c *fiber.Ctx) error {
	format := entity.ImageFormat(c.Params("ext"))
	var buf bytes.Buffer
	if err := h.uc.RenderChart(c.Context(), GetSessionID(c), c.Params("name"), format, &buf); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVALID_CHART", Message: "gráfico desconocido"})
		}
		return writeError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	if format == entity.ImagePNG {
		c.Set(fiber.HeaderContentType, "image/png")
	} else {
		c.Set(fiber.HeaderContentType, "image/svg+xml")
	}
	return c.Send(buf.Bytes())
}

// ExportCSV godoc
// @Summary      Exportar tabla derivada (CSV)
// @Tags         dashboard
// @Produce      text/csv
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export.csv [get]
func (h *DashboardHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	name, err := h.uc.ExportCSV(c.Context(), GetSessionID(c), &buf)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// ExportPDF godoc
// @Summary      Exportar reporte PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export.pdf [get]
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	doc, name, err := h.uc.ExportPDF(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}
