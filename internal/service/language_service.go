//go:generate mockery --name LanguageService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_flashcards/internal/middleware"
	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/repository"

	"gorm.io/gorm"
)

type LanguageService interface {
	ListLanguages(ctx context.Context) ([]*model.LanguageResponse, error)
	EnsureLanguage(ctx context.Context, code, name string) (*model.Language, error)
}

type languageService struct {
	db       *gorm.DB
	langRepo repository.LanguageRepository
}

func NewLanguageService(db *gorm.DB, langRepo repository.LanguageRepository) LanguageService {
	return &languageService{db: db, langRepo: langRepo}
}

func (s *languageService) ListLanguages(ctx context.Context) ([]*model.LanguageResponse, error) {
	logger := middleware.GetLogger(ctx)

	languages, err := s.langRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list languages", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load languages.", "", err)
	}

	responses := make([]*model.LanguageResponse, 0, len(languages))
	for _, l := range languages {
		responses = append(responses, model.NewLanguageResponse(l))
	}
	return responses, nil
}

// EnsureLanguage はコードに一致する言語を返し、無ければ作成する
func (s *languageService) EnsureLanguage(ctx context.Context, code, name string) (*model.Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Language code is required.", "code", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("language_code", code)

	language, err := s.langRepo.FindByCode(ctx, s.db, code)
	if err == nil {
		return language, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find language", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the language.", "", err)
	}

	if strings.TrimSpace(name) == "" {
		name = code
	}
	language = &model.Language{Code: code, Name: name}
	if err := s.langRepo.Create(ctx, s.db, language); err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 同時に作成された場合は作成済みのものを使う
			return s.langRepo.FindByCode(ctx, s.db, code)
		}
		logger.Error("Failed to create language", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the language.", "", err)
	}
	logger.Info("Language created", "language_id", language.ID, "name", name)
	return language, nil
}
