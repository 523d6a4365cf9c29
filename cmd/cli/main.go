package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/anjiri1684/pesuconnect/cli"
	config "github.com/anjiri1684/pesuconnect/configs"
	"github.com/anjiri1684/pesuconnect/database"
	"github.com/anjiri1684/pesuconnect/notifications"
	"github.com/anjiri1684/pesuconnect/services"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("🔥 Failed to load configuration: %v", err)
	}

	db, err := database.ConnectDB(cfg.DB, cfg.Production())
	if err != nil {
		fmt.Println("Error connecting to database. Please check your configuration.")
		log.Fatalf("🔥 %v", err)
	}

	var opts []services.Option
	if mailer := notifications.NewEmailService(cfg.Email); mailer != nil {
		opts = append(opts, services.WithMailer(mailer))
	}
	if cfg.ReceiptsEnabled {
		receipts, err := services.NewReceiptService(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("🔥 Failed to set up receipts: %v", err)
		}
		opts = append(opts, services.WithReceipts(receipts))
	}
	svc := services.NewService(database.NewStore(db), opts...)

	var appOpts []cli.Option
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		appOpts = append(appOpts, cli.WithPasswordReader(func() (string, error) {
			b, err := term.ReadPassword(fd)
			return string(b), err
		}))
	}

	app := cli.New(svc, os.Stdin, os.Stdout, appOpts...)
	runErr := app.Run(context.Background())
	svc.Wait()
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	if runErr != nil {
		log.Fatalf("🔥 %v", runErr)
	}
}
