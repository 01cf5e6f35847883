// Command journal serves the Lexicon writing journal over HTTP.
//
// Configuration is read from the file named by CONFIG_PATH and from the
// environment. A .env file in the working directory is loaded first when
// present.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/lexicon-journal/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("journal: %v", err)
	}
}
