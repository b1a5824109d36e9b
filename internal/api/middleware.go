package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lotionhq/huddle/internal/models"
)

const (
	authCookieName       = "huddle_auth"
	passphraseCookieName = "huddle_team"
	contextUserKey       = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
