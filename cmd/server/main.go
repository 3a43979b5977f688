// Command server runs the calendula client backend: the event form
// service, the draft store, and the notification feed behind one HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables.
// A .env file in the working directory is loaded automatically.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Strawberry-Team/calendula-client/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
