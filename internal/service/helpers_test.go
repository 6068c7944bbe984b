package service

import (
	"io"
	"log/slog"
	"testing"

	"go_5_flashcards/internal/config"
	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver:          "sqlite",
		URL:             "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		SlowThresholdMs: 500,
	}
	db, err := repository.NewDB(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedLanguage(t *testing.T, db *gorm.DB, code, name string) *model.Language {
	t.Helper()
	lang := &model.Language{Code: code, Name: name}
	require.NoError(t, db.Create(lang).Error)
	return lang
}

func seedTerm(t *testing.T, db *gorm.DB, lang *model.Language, english, target string, counter int) *model.Term {
	t.Helper()
	term := &model.Term{
		LanguageID:         lang.ID,
		EnglishTerm:        english,
		TargetLanguageTerm: target,
		CorrectCounter:     counter,
		Learned:            counter >= model.LearnedThreshold,
	}
	require.NoError(t, db.Create(term).Error)
	return term
}

func reloadTerm(t *testing.T, db *gorm.DB, id uint) *model.Term {
	t.Helper()
	var term model.Term
	require.NoError(t, db.First(&term, "id_vocabulary = ?", id).Error)
	return &term
}

func newRealPracticeService(db *gorm.DB, opts ...PracticeOption) PracticeService {
	return NewPracticeService(db, repository.NewGormLanguageRepository(), repository.NewGormTermRepository(), opts...)
}
