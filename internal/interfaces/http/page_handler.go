package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/bi-inventario/internal/application/analytics"
	"github.com/jhoicas/bi-inventario/internal/application/dto"
	"github.com/jhoicas/bi-inventario/internal/domain"
	"github.com/jhoicas/bi-inventario/internal/domain/entity"
	"github.com/jhoicas/bi-inventario/pkg/money"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"currency": money.Currency,
	"fixed2":   money.Fixed2,
	"number":   func(d decimal.Decimal) string { return d.String() },
	"markdown": boldMarkdown,
	"yesno":    yesNo,
}).ParseFS(templateFS, "templates/dashboard.html"))

// pageData modelo de la plantilla del dashboard.
type pageData struct {
	Title           string
	Dashboard       *dto.DashboardDTO
	Error           *dto.ErrorResponse
	Notice          string
	Prompt          string
	RequiredColumns []string
	Charts          []chartView
}

type chartView struct {
	Title string
	URL   string
}

var chartTitles = map[entity.ChartKind]string{
	entity.ChartValueByCategory: "Valor del Inventario por Categoría",
	entity.ChartStockByProduct:  "Stock Actual por Producto",
	entity.ChartCoverage:        "Cobertura del Inventario por Producto",
}

// PageHandler sirve la página HTML del dashboard y sus formularios.
type PageHandler struct {
	uc    *appanalytics.DashboardUseCase
	title string
}

// NewPageHandler construye el handler.
func NewPageHandler(uc *appanalytics.DashboardUseCase, title string) *PageHandler {
	if title == "" {
		title = "Dashboard de Inventario"
	}
	return &PageHandler{uc: uc, title: title}
}

// Index GET /: dashboard del archivo vigente o el aviso para subir uno.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	data := h.newPageData()
	out, err := h.uc.GetDashboard(c.Context(), GetSessionID(c))
	switch {
	case err == nil:
		h.withDashboard(&data, out)
		if c.Query("cargado") == "1" {
			data.Notice = MsgUploaded
		}
	case errors.Is(err, domain.ErrNoFile):
		data.Prompt = MsgNoFile
	default:
		status, body := errorResponse(err)
		data.Error = &body
		return h.render(c.Status(status), data)
	}
	return h.render(c, data)
}

// Upload POST /upload: formulario multipart con el campo file.
// Éxito: 303 → /?cargado=1. Fallo: la página se vuelve a dibujar con el error clasificado.
func (h *PageHandler) Upload(c *fiber.Ctx) error {
	data := h.newPageData()

	fh, err := c.FormFile("file")
	if err != nil {
		data.Error = &dto.ErrorResponse{Code: "MISSING_FILE", Message: "Selecciona un archivo .xlsx o .csv antes de cargar."}
		data.Prompt = MsgNoFile
		return h.render(c.Status(fiber.StatusBadRequest), data)
	}
	f, err := fh.Open()
	if err != nil {
		status, body := errorResponse(err)
		data.Error = &body
		return h.render(c.Status(status), data)
	}
	defer f.Close()

	if _, err := h.uc.Upload(c.Context(), GetSessionID(c), fh.Filename, f); err != nil {
		status, body := errorResponse(err)
		data.Error = &body
		data.Prompt = MsgNoFile
		return h.render(c.Status(status), data)
	}
	return c.Redirect("/?cargado=1", fiber.StatusSeeOther)
}

// Reset POST /reset: descarta el archivo y vuelve a la página vacía.
func (h *PageHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context(), GetSessionID(c)); err != nil {
		data := h.newPageData()
		status, body := errorResponse(err)
		data.Error = &body
		return h.render(c.Status(status), data)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) newPageData() pageData {
	return pageData{Title: h.title, RequiredColumns: entity.RequiredColumns}
}

func (h *PageHandler) withDashboard(data *pageData, out *dto.DashboardDTO) {
	data.Dashboard = out
	data.Charts = make([]chartView, 0, len(entity.ChartKinds))
	for _, kind := range entity.ChartKinds {
		data.Charts = append(data.Charts, chartView{Title: chartTitles[kind], URL: out.Charts[string(kind)]})
	}
}

func (h *PageHandler) render(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// boldMarkdown convierte **texto** en <strong>texto</strong>; el resto se escapa.
func boldMarkdown(s string) template.HTML {
	parts := strings.Split(s, "**")
	var b strings.Builder
	for i, p := range parts {
		escaped := template.HTMLEscapeString(p)
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString("<strong>" + escaped + "</strong>")
			continue
		}
		if i%2 == 1 {
			b.WriteString("**")
		}
		b.WriteString(escaped)
	}
	return template.HTML(b.String())
}
