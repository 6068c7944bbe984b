//go:generate mockery --name PracticeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"

	"go_5_flashcards/internal/middleware"
	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/repository"

	"gorm.io/gorm"
)

type PracticeService interface {
	SelectPracticeTerm(ctx context.Context, languageCode string, learnedOnly bool) (*model.Term, error)
	GradeAnswer(ctx context.Context, termID uint, userAnswer, answerType string) (*model.AnswerResult, error)
	GetStats(ctx context.Context, languageCode string) (*model.StatsResponse, error)
}

type practiceService struct {
	db       *gorm.DB
	langRepo repository.LanguageRepository
	termRepo repository.TermRepository
	randIntN func(n int) int // [0, n) の一様乱数
}

type PracticeOption func(*practiceService)

// WithRandom は出題の乱数源を差し替える (テスト用)
func WithRandom(intN func(n int) int) PracticeOption {
	return func(s *practiceService) {
		s.randIntN = intN
	}
}

func NewPracticeService(db *gorm.DB, langRepo repository.LanguageRepository, termRepo repository.TermRepository, opts ...PracticeOption) PracticeService {
	s := &practiceService{
		db:       db,
		langRepo: langRepo,
		termRepo: termRepo,
		randIntN: rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectPracticeTerm は出題対象からランダムに1件選ぶ。
// 練習モードは correct_counter < 3 の単語 (learned の値は見ない)、learnedOnly なら learned = true の単語。
func (s *practiceService) SelectPracticeTerm(ctx context.Context, languageCode string, learnedOnly bool) (*model.Term, error) {
	logger := middleware.GetLogger(ctx).With("language_code", languageCode, "learned_only", learnedOnly)

	language, err := s.resolveLanguage(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	filter := model.TermFilterPracticing
	if learnedOnly {
		filter = model.TermFilterLearned
	}

	terms, err := s.termRepo.FindByLanguage(ctx, s.db, language.ID, filter)
	if err != nil {
		logger.Error("Failed to find eligible terms", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcards.", "", err)
	}
	if len(terms) == 0 {
		logger.Info("No eligible terms for practice")
		return nil, model.ErrNoEligibleTerms
	}

	term := terms[s.randIntN(len(terms))]
	logger.Debug("Practice term selected", "term_id", term.ID, "eligible", len(terms))
	return term, nil
}

// GradeAnswer は回答を採点し、正解なら進捗を更新する。
// 読み取りから書き込みまでを1トランザクション・行ロック下で行うので、同じ単語への同時正解でも加算が失われない。
func (s *practiceService) GradeAnswer(ctx context.Context, termID uint, userAnswer, answerType string) (*model.AnswerResult, error) {
	logger := middleware.GetLogger(ctx).With("term_id", termID, "answer_type", answerType)

	var result *model.AnswerResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		term, err := s.termRepo.FindByIDForUpdate(ctx, tx, termID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrTermNotFound
			}
			logger.Error("Error finding term in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the term.", "", err)
		}

		parsedType, err := model.ParseAnswerType(answerType)
		if err != nil {
			return err
		}
		reference, err := term.ReferenceAnswer(parsedType)
		if err != nil {
			return err
		}

		correct := answersMatch(userAnswer, reference)
		if correct {
			term.RecordCorrectAnswer()
			if err := s.termRepo.UpdateProgress(ctx, tx, term); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					// ロック取得後に消えた場合
					return model.ErrTermNotFound
				}
				logger.Error("Error updating term progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save progress.", "", err)
			}
			logger.Info("Correct answer recorded", "correct_counter", term.CorrectCounter, "learned", term.Learned)
		}

		result = &model.AnswerResult{
			Correct:       correct,
			CorrectAnswer: reference,
			Message:       answerMessage(correct, reference),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetStats は言語ごとの学習状況を集計する
func (s *practiceService) GetStats(ctx context.Context, languageCode string) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("language_code", languageCode)

	language, err := s.resolveLanguage(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.TermFilter]int64, 3)
	for _, filter := range []model.TermFilter{model.TermFilterNone, model.TermFilterLearned, model.TermFilterPracticing} {
		n, err := s.termRepo.CountByLanguage(ctx, s.db, language.ID, filter)
		if err != nil {
			logger.Error("Failed to count terms", "error", err, "filter", filter.String())
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
		}
		counts[filter] = n
	}

	return &model.StatsResponse{
		TotalTerms:         counts[model.TermFilterNone],
		LearnedTerms:       counts[model.TermFilterLearned],
		PracticeTerms:      counts[model.TermFilterPracticing],
		ProgressPercentage: progressPercentage(counts[model.TermFilterLearned], counts[model.TermFilterNone]),
	}, nil
}

func (s *practiceService) resolveLanguage(ctx context.Context, code string) (*model.Language, error) {
	language, err := s.langRepo.FindByCode(ctx, s.db, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrLanguageNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to resolve language", "error", err, "language_code", code)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the language.", "", err)
	}
	return language, nil
}

// progressPercentage は小数第1位に丸めた習得率。total が 0 なら 0。
func progressPercentage(learned, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(learned)/float64(total)*1000) / 10
}
