package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/bi-inventario/internal/application/dto"
	"github.com/jhoicas/bi-inventario/pkg/jwt"
)

// SessionCookieName cookie que identifica la sesión del navegador.
const SessionCookieName = "bi_session"

// LocalSessionID key de c.Locals con el id de sesión.
const LocalSessionID = "session_id"

// SessionConfig parámetros de la cookie de sesión.
type SessionConfig struct {
	Secret     string
	Issuer     string
	TTLMinutes int
	Secure     bool // cookie sólo por HTTPS
}

// SessionMiddleware lee la cookie bi_session (JWT firmado cuyo subject es el id de sesión)
// y deja el id en c.Locals. Si falta, es inválida o expiró, abre una sesión nueva
// con un UUID y emite la cookie.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookieName); token != "" {
			if sessionID, err := jwt.Parse(cfg.Secret, cfg.Issuer, token); err == nil {
				c.Locals(LocalSessionID, sessionID)
				return c.Next()
			}
		}

		sessionID := uuid.NewString()
		token, err := jwt.Generate(cfg.Secret, sessionID, cfg.Issuer, cfg.TTLMinutes)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo abrir la sesión"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(time.Duration(cfg.TTLMinutes) * time.Minute),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después de SessionMiddleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
