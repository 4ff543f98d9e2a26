package handlers

import (
	"strconv"
	"time"

	"peels-backend/middleware"
	"peels-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatisticsRoutes(app *fiber.App, statistics *services.StatisticsService, users *services.UserService) {
	group := app.Group("/statistics", middleware.UserContextMiddleware())

	group.Get("/entries-per-month", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
		counts, err := statistics.EntriesPerMonth(user.ID, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute histogram", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"year": year, "counts": counts})
	})

	group.Get("/moods", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		dist, err := statistics.MoodDistribution(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute mood distribution", "cause": err.Error(),
			})
		}
		return c.JSON(dist)
	})

	group.Get("/xp-history", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		days, _ := strconv.Atoi(c.Query("days", "30"))
		if days < 1 || days > 365 {
			days = 30
		}
		history, err := statistics.XPHistory(user.ID, days)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load XP history", "cause": err.Error(),
			})
		}
		return c.JSON(history)
	})

	group.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "20"))
		rows, err := statistics.MonthlyLeaderboard(time.Now(), limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute leaderboard", "cause": err.Error(),
			})
		}
		return c.JSON(rows)
	})

	group.Get("/longest-streak", func(c *fiber.Ctx) error {
		user, err := currentUser(c, users)
		if err != nil {
			return notFoundOr500(c, err, "user")
		}
		longest, err := statistics.LongestEntryStreak(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute streak", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"longest_entry_streak": longest,
			"current_entry_streak": user.EntryDaysInARow,
		})
	})
}
