package api

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// PassphraseLogin opens the shared-passphrase perimeter. With no passphrase
// configured the perimeter is already open and the endpoint is a no-op.
func (handler *Handler) PassphraseLogin(c *fiber.Ctx) error {
	if handler.teamPassphrase == "" {
		return c.JSON(fiber.Map{"ok": true})
	}

	input := passphraseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if subtle.ConstantTimeCompare([]byte(input.Passphrase), []byte(handler.teamPassphrase)) != 1 {
		return apiError(c, fiber.StatusUnauthorized, "wrong passphrase")
	}

	c.Cookie(&fiber.Cookie{
		Name:     passphraseCookieName,
		Value:    handler.passphraseCookieValue(),
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"ok": true})
}
