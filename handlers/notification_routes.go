package handlers

import (
	"time"

	"peels-backend/middleware"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App, notifications *services.NotificationService, users *services.UserService) {
	group := app.Group("/notifications", middleware.UserContextMiddleware())

	group.Get("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		unreadOnly := c.Query("unread") == "true"
		list, err := notifications.ListForUser(user.ID, unreadOnly)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list notifications", "cause": err.Error(),
			})
		}
		return c.JSON(list)
	})

	// Schedule a journaling reminder for later delivery by the sweep job.
	group.Post("/reminders", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req struct {
			Message      string    `json:"message"`
			ScheduledFor time.Time `json:"scheduled_for"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.Message == "" || req.ScheduledFor.IsZero() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message and scheduled_for are required"})
		}

		n, err := notifications.ScheduleReminder(user.ID, req.Message, req.ScheduledFor)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to schedule reminder", "cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(n)
	})

	group.Post("/:id/read", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := notifications.MarkRead(user.ID, c.Params("id")); err != nil {
			return notFoundOr500(c, err, "notification")
		}
		return c.JSON(fiber.Map{"message": "marked read"})
	})

	group.Post("/read-all", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := notifications.MarkAllRead(user.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to mark notifications read", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "all marked read"})
	})
}
