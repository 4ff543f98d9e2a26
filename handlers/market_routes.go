package handlers

import (
	"path/filepath"

	"peels-backend/middleware"
	"peels-backend/models"
	"peels-backend/services"
	"peels-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupMarketRoutes(app *fiber.App, market *services.MarketService, users *services.UserService) {
	group := app.Group("/market", middleware.UserContextMiddleware())

	group.Get("/items", func(c *fiber.Ctx) error {
		items, err := market.ListItems()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list items", "cause": err.Error(),
			})
		}
		return c.JSON(items)
	})

	group.Get("/owned", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		owned, err := market.ListOwned(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list owned items", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"bananas": user.Bananas, "items": owned})
	})

	group.Post("/items/:id/buy", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		owned, err := market.Purchase(user.ID, c.Params("id"))
		switch err {
		case nil:
		case services.ErrInsufficientBananas:
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": err.Error()})
		case services.ErrAlreadyOwned:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return notFoundOr500(c, err, "item")
		}
		return c.Status(fiber.StatusCreated).JSON(owned)
	})

	group.Post("/items/:id/equip", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := market.Equip(user.ID, c.Params("id")); err != nil {
			if err == services.ErrNotOwned {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
			}
			return notFoundOr500(c, err, "item")
		}
		return c.JSON(fiber.Map{"message": "equipped"})
	})

	// Admin: upload a replacement icon for a catalog item (small public
	// asset → R2).
	admin := app.Group("/admin/market", middleware.UserContextMiddleware(), middleware.RequireRole("admin"))

	admin.Post("/items/:id/icon", func(c *fiber.Ctx) error {
		iconFile, err := c.FormFile("icon")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "icon file is required"})
		}

		ext := filepath.Ext(iconFile.Filename)
		if ext == "" {
			ext = ".png"
		}
		key := "market-icons/" + uuid.NewString() + ext
		iconURL, err := utils.UploadFileToR2(iconFile, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to upload icon", "cause": err.Error(),
			})
		}

		if err := market.DB.Model(&models.MarketItem{}).
			Where("id = ?", c.Params("id")).
			Update("icon_url", iconURL).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save icon URL", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"icon_url": iconURL})
	})
}
