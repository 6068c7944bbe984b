package service

import (
	"context"
	"strings"

	"go_5_flashcards/internal/middleware"
	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportService は取り込みファイルの行を単語として登録する
type ImportService struct {
	db          *gorm.DB
	languageSvc LanguageService
	termRepo    repository.TermRepository
}

func NewImportService(db *gorm.DB, languageSvc LanguageService, termRepo repository.TermRepository) *ImportService {
	return &ImportService{db: db, languageSvc: languageSvc, termRepo: termRepo}
}

// Import は rows を languageCode の言語に登録する。
// english / target が空の行と、既に登録済みの組は飛ばす。全件を1トランザクションで書き込む。
func (s *ImportService) Import(ctx context.Context, languageCode, languageName string, rows []model.ImportRow) (*model.ImportResult, error) {
	result := &model.ImportResult{BatchID: uuid.New(), Total: len(rows)}
	logger := middleware.GetLogger(ctx).With("batch_id", result.BatchID.String(), "language_code", languageCode)

	language, err := s.languageSvc.EnsureLanguage(ctx, languageCode, languageName)
	if err != nil {
		return nil, err
	}
	result.LanguageID = language.ID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := make(map[[2]string]bool, len(rows))
		terms := make([]*model.Term, 0, len(rows))

		for _, row := range rows {
			english := strings.TrimSpace(row.EnglishTerm)
			target := strings.TrimSpace(row.TargetLanguageTerm)
			if english == "" || target == "" {
				result.Skipped++
				continue
			}

			key := [2]string{english, target}
			if seen[key] {
				result.Duplicates++
				continue
			}
			seen[key] = true

			exists, err := s.termRepo.ExistsByTerms(ctx, tx, language.ID, english, target)
			if err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check existing terms.", "", err)
			}
			if exists {
				result.Duplicates++
				continue
			}

			terms = append(terms, newImportedTerm(language.ID, english, target, row))
		}

		if err := s.termRepo.CreateBatch(ctx, tx, terms); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save imported terms.", "", err)
		}
		result.Created = len(terms)
		return nil
	})
	if err != nil {
		logger.Error("Import failed, rolled back", "error", err)
		return nil, err
	}

	logger.Info("Import completed",
		"total", result.Total,
		"created", result.Created,
		"skipped", result.Skipped,
		"duplicates", result.Duplicates,
	)
	return result, nil
}

// newImportedTerm は取り込み値から Term を作る。
// カウンタは0未満にしない。learned と counter >= 3 は常に揃える
// (learned 済みの行はカウンタを閾値まで引き上げ、閾値以上の行は learned にする)。
func newImportedTerm(languageID uint, english, target string, row model.ImportRow) *model.Term {
	counter := row.CorrectCounter
	if counter < 0 {
		counter = 0
	}
	term := &model.Term{
		LanguageID:               languageID,
		EnglishTerm:              english,
		TargetLanguageTerm:       target,
		Transliteration:          nonEmpty(row.Transliteration),
		ExampleSentence:          nonEmpty(row.ExampleSentence),
		ExampleSentenceExplained: nonEmpty(row.ExampleSentenceExplained),
		Notes:                    nonEmpty(row.Notes),
		Learned:                  row.Learned || counter >= model.LearnedThreshold,
		CorrectCounter:           counter,
	}
	if term.Learned && term.CorrectCounter < model.LearnedThreshold {
		term.CorrectCounter = model.LearnedThreshold
	}
	return term
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
