package handlers

import (
	"peels-backend/middleware"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupFriendRoutes(app *fiber.App, friends *services.FriendService, users *services.UserService) {
	group := app.Group("/friends", middleware.UserContextMiddleware())

	group.Get("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		list, err := friends.ListFriends(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list friends", "cause": err.Error(),
			})
		}
		return c.JSON(list)
	})

	group.Get("/pending", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		pending, err := friends.ListPending(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list pending requests", "cause": err.Error(),
			})
		}
		return c.JSON(pending)
	})

	group.Post("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		var req struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&req); err != nil || req.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
		}

		friendship, err := friends.Request(user.ID, req.UserID)
		if err == services.ErrAlreadyFriends {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to send friend request", "cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(friendship)
	})

	group.Post("/:id/accept", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		friendship, err := friends.Accept(user.ID, c.Params("id"))
		if err != nil {
			return notFoundOr500(c, err, "friend request")
		}
		return c.JSON(friendship)
	})

	group.Post("/:id/decline", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := friends.Decline(user.ID, c.Params("id")); err != nil {
			return notFoundOr500(c, err, "friend request")
		}
		return c.JSON(fiber.Map{"message": "request declined"})
	})

	group.Delete("/:id", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		if err := friends.Remove(user.ID, c.Params("id")); err != nil {
			return notFoundOr500(c, err, "friendship")
		}
		return c.JSON(fiber.Map{"message": "friend removed"})
	})
}
