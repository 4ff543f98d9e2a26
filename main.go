package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"peels-backend/handlers"
	"peels-backend/middleware"
	"peels-backend/models"
	"peels-backend/services"
	"peels-backend/utils"
	"peels-backend/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, entries and small image assets only
	})

	// Every request must come through the gateway.
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Println("⚠️  ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-User-ID, X-User-Roles, X-User-Name, X-User-Email",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dbPath := os.Getenv("PEELS_DB_PATH")
	if dbPath == "" {
		dbPath = "peels.db"
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Journal{},
		&models.Entry{},
		&models.Friendship{},
		&models.Goal{},
		&models.Notification{},
		&models.XPLog{},
		&models.MarketItem{},
		&models.UserItem{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	notificationService := services.NewNotificationService(db)
	progressionService := services.NewProgressionService(db)
	badgeService := services.NewBadgeService(db)
	userService := services.NewUserService(db, badgeService, notificationService)
	journalService := services.NewJournalService(db)
	entryService := services.NewEntryService(db, progressionService, badgeService, notificationService)
	friendService := services.NewFriendService(db, notificationService)
	goalService := services.NewGoalService(db, progressionService, notificationService)
	marketService := services.NewMarketService(db)
	statisticsService := services.NewStatisticsService(db)

	if err := marketService.SeedCatalog(); err != nil {
		log.Fatal("failed to seed market catalog:", err)
	}

	identityURL := os.Getenv("IDENTITY_SERVICE_URL")
	if identityURL == "" {
		log.Fatal("IDENTITY_SERVICE_URL environment variable not set")
	}
	serviceToken := os.Getenv("PEELS_SERVICE_TOKEN")
	if serviceToken == "" {
		log.Fatal("PEELS_SERVICE_TOKEN environment variable not set")
	}

	syncWorker := workers.NewProfileSyncWorker(db, identityURL, "/api/v1/public/profiles", serviceToken)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go syncWorker.Start(ctx)

	notificationService.StartReminderScheduler()

	handlers.SetupJournalRoutes(app, journalService, entryService, userService)
	handlers.SetupEntryRoutes(app, entryService, userService)
	handlers.SetupFriendRoutes(app, friendService, userService)
	handlers.SetupGoalRoutes(app, goalService, userService)
	handlers.SetupNotificationRoutes(app, notificationService, userService)
	handlers.SetupMarketRoutes(app, marketService, userService)
	handlers.SetupProgressionRoutes(app, userService, progressionService)
	handlers.SetupStatisticsRoutes(app, statisticsService, userService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Peels API running on http://localhost:%s", port)
	log.Println("✅ Profile sync worker running")
	log.Println("✅ Reminder scheduler running (every 1m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally")

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
