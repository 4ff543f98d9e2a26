package handlers

import (
	"path/filepath"
	"time"

	"peels-backend/middleware"
	"peels-backend/models"
	"peels-backend/services"
	"peels-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupProgressionRoutes(app *fiber.App, users *services.UserService, progression *services.ProgressionService) {
	group := app.Group("/progress", middleware.UserContextMiddleware())

	group.Get("/", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		// XP still needed for the next level, for the progress bar.
		nextLevelCost := services.BaseLevelCost
		remaining := user.XP
		for remaining >= nextLevelCost {
			remaining -= nextLevelCost
			nextLevelCost += services.LevelCostStep
		}

		return c.JSON(fiber.Map{
			"id":                    user.ID,
			"username":              user.Username,
			"avatar_url":            user.AvatarURL,
			"xp":                    user.XP,
			"level":                 user.Level,
			"xp_into_level":         remaining,
			"xp_for_next_level":     nextLevelCost,
			"bananas":               user.Bananas,
			"days_in_a_row":         user.DaysInARow,
			"entry_count":           user.EntryCount,
			"entry_days_in_a_row":   user.EntryDaysInARow,
			"monthly_entry_counter": user.MonthlyEntryCounter,
			"registration_date":     user.RegistrationDate,
			"badges":                services.ParseBadges(user.EarnedBadges),
		})
	})

	// Called by the frontend once per session; advances the login streak.
	group.Post("/login", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		updated, granted, err := users.RegisterDailyLogin(user.ExternalUserID, time.Now())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to register login", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"days_in_a_row": updated.DaysInARow,
			"new_badges":    granted,
		})
	})

	group.Get("/badges", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		earned := services.ParseBadges(user.EarnedBadges)
		earnedSet := make(map[string]bool, len(earned))
		for _, code := range earned {
			earnedSet[code] = true
		}

		var response []fiber.Map
		for _, bt := range models.BadgeCatalog {
			response = append(response, fiber.Map{
				"code":        bt.Code,
				"name":        bt.Name,
				"description": bt.Description,
				"rarity":      bt.Rarity,
				"earned":      earnedSet[bt.Code],
			})
		}
		return c.JSON(response)
	})

	group.Post("/avatar", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}

		avatarFile, err := c.FormFile("avatar")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
		}

		ext := filepath.Ext(avatarFile.Filename)
		if ext == "" {
			ext = ".png"
		}
		key := "avatars/" + uuid.NewString() + ext
		avatarURL, err := utils.UploadFileToR2(avatarFile, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to upload avatar", "cause": err.Error(),
			})
		}

		if err := users.DB.Model(user).Update("avatar_url", avatarURL).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save avatar URL", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"avatar_url": avatarURL})
	})

	// Admin XP grant, mostly for support tooling.
	admin := app.Group("/admin/progress", middleware.UserContextMiddleware(), middleware.RequireRole("admin"))

	admin.Post("/xp/grant", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"user_id"`
			XP     int    `json:"xp"`
			Reason string `json:"reason"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.UserID == "" || req.XP < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id and positive xp are required"})
		}

		updated, err := progression.AwardXP(req.UserID, req.XP, req.Reason)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		return c.JSON(fiber.Map{
			"message": "XP granted",
			"user_id": updated.ID,
			"xp":      updated.XP,
			"level":   updated.Level,
		})
	})
}
