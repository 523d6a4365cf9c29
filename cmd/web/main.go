package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/pesuconnect/configs"
	"github.com/anjiri1684/pesuconnect/database"
	"github.com/anjiri1684/pesuconnect/handlers"
	"github.com/anjiri1684/pesuconnect/jobs"
	"github.com/anjiri1684/pesuconnect/notifications"
	"github.com/anjiri1684/pesuconnect/routes"
	"github.com/anjiri1684/pesuconnect/services"
	"github.com/anjiri1684/pesuconnect/views"
	"github.com/anjiri1684/pesuconnect/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("🔥 Failed to load configuration: %v", err)
	}
	flag.StringVar(&cfg.Port, "addr", cfg.Port, "listen address (overrides APP_PORT)")
	flag.Parse()
	if cfg.JWTSecret == "" {
		if cfg.Production() {
			log.Fatal("🔥 JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = uuid.NewString()
		log.Println("⚠️ JWT_SECRET not set, using a random secret; logins end on restart")
	}

	db, err := database.ConnectDB(cfg.DB, cfg.Production())
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("🔥 %v", err)
		}
		if err := database.SeedSkills(db); err != nil {
			log.Fatalf("🔥 %v", err)
		}
	}
	store := database.NewStore(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	opts := []services.Option{services.WithPublisher(hub)}
	mailer := notifications.NewEmailService(cfg.Email)
	if mailer != nil {
		opts = append(opts, services.WithMailer(mailer))
	} else {
		log.Println("⚠️ Email is not configured, notifications are disabled")
	}
	if cfg.ReceiptsEnabled {
		receipts, err := services.NewReceiptService(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("🔥 Failed to set up receipts: %v", err)
		}
		opts = append(opts, services.WithReceipts(receipts))
	}
	svc := services.NewService(store, opts...)

	c := cron.New()
	if mailer != nil {
		reminder := jobs.NewDeadlineReminder(store, mailer)
		if _, err := reminder.Schedule(c, cfg.ReminderSchedule); err != nil {
			log.Fatalf("🔥 Failed to schedule deadline reminders: %v", err)
		}
		log.Println("✅ Deadline reminders scheduled successfully.")
	}
	c.Start()

	app := fiber.New(fiber.Config{
		AppName:           cfg.Name,
		Views:             views.Engine(),
		PassLocalsToViews: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler:      handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(helmet.New())
	app.Use(compress.New(compress.Config{
		Next: func(c *fiber.Ctx) bool { return c.Path() == "/ws" },
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.DB.TimeZone,
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	sessions := session.New(session.Config{
		Expiration:     cfg.SessionTTL,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Production(),
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
	h := handlers.New(svc, sessions, handlers.Config{
		AppName:      cfg.Name,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.SessionTTL,
		SecureCookie: cfg.Production(),
	})
	routes.Setup(app, h, hub)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Server shutdown: %v", err)
		}
	}()

	log.Printf("✅ Server is running on %s", cfg.Port)
	if err := app.Listen(cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}

	<-c.Stop().Done()
	<-hub.Done()
	svc.Wait()
	log.Println("✅ Shutdown complete")
}
