package handlers

import (
	"time"

	"peels-backend/middleware"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupEntryRoutes(app *fiber.App, entries *services.EntryService, users *services.UserService) {
	group := app.Group("/entries", middleware.UserContextMiddleware())

	// Creating an entry is the main gamification trigger: streaks advance,
	// XP lands and badges are re-evaluated, all inside the service call.
	group.Post("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req struct {
			JournalID string     `json:"journal_id"`
			Title     string     `json:"title"`
			Content   string     `json:"content"`
			Mood      string     `json:"mood"`
			EntryDate *time.Time `json:"entry_date"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.JournalID == "" || req.Content == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "journal_id and content are required"})
		}

		entryDate := time.Now()
		if req.EntryDate != nil {
			entryDate = *req.EntryDate
		}

		result, err := entries.Create(user.ID, req.JournalID, req.Title, req.Content, req.Mood, entryDate)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create entry", "cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})

	group.Get("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		entry, err := entries.Get(user.ID, c.Params("id"))
		if err != nil {
			return notFoundOr500(c, err, "entry")
		}
		return c.JSON(entry)
	})

	group.Put("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Mood    string `json:"mood"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		entry, err := entries.Update(user.ID, c.Params("id"), req.Title, req.Content, req.Mood)
		if err != nil {
			return notFoundOr500(c, err, "entry")
		}
		return c.JSON(entry)
	})

	group.Delete("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := entries.Delete(user.ID, c.Params("id")); err != nil {
			return notFoundOr500(c, err, "entry")
		}
		return c.JSON(fiber.Map{"message": "entry deleted"})
	})
}
