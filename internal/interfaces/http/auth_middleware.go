package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/pkg/jwt"
)

// LocalSession clave de la sesión en c.Locals.
const LocalSession = "session"

// AuthMiddleware valida el Bearer Token JWT y deja la sesión en c.Locals.
// El token crudo se conserva en la sesión: todas las llamadas al backend lo
// reenvían tal cual, el gateway nunca re-firma.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "en-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		userID, boutiqueID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		c.Locals(LocalSession, domain.Session{
			Token:      tokenString,
			UserID:     userID,
			BoutiqueID: boutiqueID,
			Role:       role,
		})
		return c.Next()
	}
}

// RequireAdmin corta con 403 las rutas de la consola admin para cualquier
// sesión sin ese rol. Debe ir detrás de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "réservé aux administrateurs"})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (anónima en rutas públicas).
func GetSession(c *fiber.Ctx) domain.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return domain.Anonymous()
	}
	s, _ := v.(domain.Session)
	return s
}
