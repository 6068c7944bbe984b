// cmd/importer/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"go_5_flashcards/internal/config"
	"go_5_flashcards/internal/importer"
	"go_5_flashcards/internal/middleware"
	"go_5_flashcards/internal/repository"
	"go_5_flashcards/internal/service"
)

func main() {
	filePath := flag.String("file", "output.csv", "path to the .csv, .xlsx or .yaml file to import")
	languageCode := flag.String("language", "", "language code (default: app.default_language, or the code in a YAML seed)")
	languageName := flag.String("name", "", "language name used when the language is created")
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	if err := run(*filePath, *languageCode, *languageName, *configPath, logger); err != nil {
		logger.Error("Import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(filePath, languageCode, languageName, configPath string, logger *slog.Logger) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	doc, err := importer.Read(filePath, importer.Options{SheetName: cfg.Import.SheetName})
	if err != nil {
		return err
	}

	// 優先順位: フラグ > シードファイル > 設定
	if languageCode == "" {
		languageCode = doc.LanguageCode
	}
	if languageCode == "" {
		languageCode = cfg.App.DefaultLanguage
	}
	if languageName == "" {
		languageName = doc.LanguageName
	}
	if languageName == "" && languageCode == cfg.App.DefaultLanguage {
		languageName = cfg.Import.LanguageName
	}

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		return err
	}

	langRepo := repository.NewGormLanguageRepository()
	termRepo := repository.NewGormTermRepository()
	importService := service.NewImportService(db, service.NewLanguageService(db, langRepo), termRepo)

	ctx := middleware.WithLogger(context.Background(), logger.With(slog.String("file", filePath)))
	result, err := importService.Import(ctx, languageCode, languageName, doc.Rows)
	if err != nil {
		return err
	}

	logger.Info("Successfully imported terms",
		slog.String("batch_id", result.BatchID.String()),
		slog.String("language_code", languageCode),
		slog.Int("rows", result.Total),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("duplicates", result.Duplicates),
	)
	return nil
}
