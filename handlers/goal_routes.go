package handlers

import (
	"time"

	"peels-backend/middleware"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
)

type goalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
}

func SetupGoalRoutes(app *fiber.App, goals *services.GoalService, users *services.UserService) {
	group := app.Group("/goals", middleware.UserContextMiddleware())

	group.Get("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		list, err := goals.ListForUser(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list goals", "cause": err.Error(),
			})
		}
		return c.JSON(list)
	})

	group.Post("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req goalRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
		}

		goal, err := goals.Create(user.ID, req.Title, req.Description, req.TargetDate)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create goal", "cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(goal)
	})

	group.Post("/:id/complete", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		goal, err := goals.Complete(user.ID, c.Params("id"))
		if err == services.ErrGoalAlreadyCompleted {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return notFoundOr500(c, err, "goal")
		}
		return c.JSON(goal)
	})

	group.Put("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req goalRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		goal, err := goals.Update(user.ID, c.Params("id"), req.Title, req.Description, req.TargetDate)
		if err != nil {
			return notFoundOr500(c, err, "goal")
		}
		return c.JSON(goal)
	})

	group.Delete("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := goals.Delete(user.ID, c.Params("id")); err != nil {
			return notFoundOr500(c, err, "goal")
		}
		return c.JSON(fiber.Map{"message": "goal deleted"})
	})
}
