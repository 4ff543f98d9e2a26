package handlers

import (
	"peels-backend/middleware"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupJournalRoutes(app *fiber.App, journals *services.JournalService, entries *services.EntryService, users *services.UserService) {
	group := app.Group("/journals", middleware.UserContextMiddleware())

	group.Get("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		list, err := journals.ListForUser(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list journals", "cause": err.Error(),
			})
		}
		return c.JSON(list)
	})

	group.Post("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req struct {
			Title string `json:"title"`
			Color string `json:"color"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
		}

		journal, err := journals.Create(user.ID, req.Title, req.Color)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create journal", "cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(journal)
	})

	group.Get("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		journal, err := journals.Get(user.ID, c.Params("id"))
		if err != nil {
			return notFoundOr500(c, err, "journal")
		}
		return c.JSON(journal)
	})

	group.Get("/:id/entries", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		list, err := entries.ListForJournal(user.ID, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list entries", "cause": err.Error(),
			})
		}
		return c.JSON(list)
	})

	group.Put("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req struct {
			Title string `json:"title"`
			Color string `json:"color"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		journal, err := journals.Update(user.ID, c.Params("id"), req.Title, req.Color)
		if err != nil {
			return notFoundOr500(c, err, "journal")
		}
		return c.JSON(journal)
	})

	group.Delete("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := journals.Delete(user.ID, c.Params("id")); err != nil {
			return notFoundOr500(c, err, "journal")
		}
		return c.JSON(fiber.Map{"message": "journal deleted"})
	})
}
