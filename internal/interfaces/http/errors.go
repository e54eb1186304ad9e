package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bi-inventario/internal/application/dto"
	"github.com/jhoicas/bi-inventario/internal/domain"
)

// Mensajes visibles para el usuario.
const (
	MsgNoFile   = "Por favor sube un archivo para generar el dashboard."
	MsgUploaded = "Archivo cargado correctamente."
)

// errorResponse clasifica err en status HTTP + cuerpo de error.
//
//	MISSING_COLUMN / NON_NUMERIC_VALUE / NEGATIVE_VALUE / NO_DATA_ROWS → 422
//	UNREADABLE_FILE / INVALID_INPUT                                     → 400
//	NO_FILE                                                             → 404
//	cualquier otro                                                      → 500 INTERNAL
func errorResponse(err error) (int, dto.ErrorResponse) {
	var (
		mce *domain.MissingColumnError
		ce  *domain.CellError
	)
	switch {
	case errors.As(err, &mce):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    "MISSING_COLUMN",
			Message: "Faltan columnas requeridas: " + strings.Join(mce.Columns, ", "),
		}
	case errors.As(err, &ce) && errors.Is(ce.Err, domain.ErrNegativeValue):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    "NEGATIVE_VALUE",
			Message: fmt.Sprintf("Valor negativo en la fila %d, columna %q: %q", ce.Row, ce.Column, ce.Value),
		}
	case errors.As(err, &ce):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    "NON_NUMERIC_VALUE",
			Message: fmt.Sprintf("Valor no numérico en la fila %d, columna %q: %q", ce.Row, ce.Column, ce.Value),
		}
	case errors.Is(err, domain.ErrMissingColumn):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "MISSING_COLUMN", Message: "Faltan columnas requeridas"}
	case errors.Is(err, domain.ErrNonNumericValue):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "NON_NUMERIC_VALUE", Message: "El archivo contiene valores no numéricos"}
	case errors.Is(err, domain.ErrNegativeValue):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "NEGATIVE_VALUE", Message: "El archivo contiene valores negativos"}
	case errors.Is(err, domain.ErrNoDataRows):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "NO_DATA_ROWS", Message: "El archivo no contiene filas de datos"}
	case errors.Is(err, domain.ErrUnreadableFile):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "No se pudo leer el archivo: use .xlsx o texto separado por comas"}
	case errors.Is(err, domain.ErrNoFile):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NO_FILE", Message: MsgNoFile}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

// writeError responde JSON con la clasificación de err.
func writeError(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}

// ErrorHandler manejador de errores de fiber: los *fiber.Error conservan su status
// (413 por límite de cuerpo, 404 por ruta inexistente) con el cuerpo dto.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusRequestEntityTooLarge:
			code = "FILE_TOO_LARGE"
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}
