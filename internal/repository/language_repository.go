//go:generate mockery --name LanguageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_5_flashcards/internal/middleware"
	"go_5_flashcards/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type LanguageRepository interface {
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Language, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Language, error)
	Create(ctx context.Context, db *gorm.DB, language *model.Language) error
}

type gormLanguageRepository struct{}

func NewGormLanguageRepository() LanguageRepository {
	return &gormLanguageRepository{}
}

func (r *gormLanguageRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var language model.Language
	result := db.WithContext(ctx).Where("code = ?", code).First(&language)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding language by code in DB",
			"error", result.Error,
			"language_code", code,
		)
		return nil, fmt.Errorf("gormLanguageRepository.FindByCode: %w", result.Error)
	}
	return &language, nil
}

func (r *gormLanguageRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var languages []*model.Language
	result := db.WithContext(ctx).Order("id ASC").Find(&languages)
	if result.Error != nil {
		logger.Error("Error listing languages in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLanguageRepository.FindAll: %w", result.Error)
	}
	return languages, nil
}

func (r *gormLanguageRepository) Create(ctx context.Context, db *gorm.DB, language *model.Language) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(language)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create language",
				"error", result.Error,
				"language_code", language.Code,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating language in DB",
			"error", result.Error,
			"language_code", language.Code,
		)
		return fmt.Errorf("gormLanguageRepository.Create: %w", result.Error)
	}
	return nil
}

// isUniqueViolation は一意制約違反かどうかを判定する (Postgres は SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// TranslateError を有効にしたドライバ / SQLite 用
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
