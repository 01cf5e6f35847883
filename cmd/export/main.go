// Command export writes every stored draft and the course roadmap to an
// .xlsx workbook without starting the HTTP server.
//
// Usage:
//
//	export --out=journal.xlsx
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/lexicon-journal/internal/app"
	"github.com/heartmarshall/lexicon-journal/internal/config"
	"github.com/heartmarshall/lexicon-journal/internal/course"
	"github.com/heartmarshall/lexicon-journal/internal/service/export"
	"github.com/heartmarshall/lexicon-journal/internal/store"
)

func main() {
	out := flag.String("out", "lexicon-journal.xlsx", "path of the workbook to write")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	kv, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := export.NewService(logger, store.New(logger, kv), course.Default)

	err = writeWorkbook(ctx, svc, *out)
	closeStore()
	if err != nil {
		logger.Error("export failed", slog.String("error", err.Error()), slog.String("out", *out))
		os.Exit(1)
	}

	logger.Info("export completed", slog.String("out", *out))
}

func writeWorkbook(ctx context.Context, svc *export.Service, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svc.WriteWorkbook(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
