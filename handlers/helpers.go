package handlers

import (
	"peels-backend/models"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// currentUser resolves the gateway identity header to the local user mirror,
// creating it on first sight (the sync worker may not have run yet).
func currentUser(c *fiber.Ctx, users *services.UserService) (*models.User, error) {
	externalID := c.Locals("user_id").(string)
	user, err := users.FindByExternalID(externalID)
	if err == gorm.ErrRecordNotFound {
		return users.EnsureUser(externalID, c.Get("X-User-Name"), c.Get("X-User-Email"))
	}
	return user, err
}

func notFoundOr500(c *fiber.Ctx, err error, what string) error {
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to load " + what,
		"cause": err.Error(),
	})
}
