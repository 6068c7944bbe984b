//go:generate mockery --name TermRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_flashcards/internal/middleware"
	"go_5_flashcards/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TermRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, termID uint) (*model.Term, error)
	// FindByIDForUpdate は行ロック付きで取得する。トランザクション (tx) 内で呼ぶこと。
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, termID uint) (*model.Term, error)
	FindByLanguage(ctx context.Context, db *gorm.DB, languageID uint, filter model.TermFilter) ([]*model.Term, error)
	CountByLanguage(ctx context.Context, db *gorm.DB, languageID uint, filter model.TermFilter) (int64, error)
	UpdateProgress(ctx context.Context, tx *gorm.DB, term *model.Term) error
	CreateBatch(ctx context.Context, tx *gorm.DB, terms []*model.Term) error
	ExistsByTerms(ctx context.Context, db *gorm.DB, languageID uint, englishTerm, targetTerm string) (bool, error)
}

type gormTermRepository struct{}

func NewGormTermRepository() TermRepository {
	return &gormTermRepository{}
}

// termFilterScope は TermFilter を WHERE 句に変換する
func termFilterScope(filter model.TermFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch filter {
		case model.TermFilterLearned:
			return db.Where("learned = ?", true)
		case model.TermFilterPracticing:
			return db.Where("correct_counter < ?", model.LearnedThreshold)
		default:
			return db
		}
	}
}

func (r *gormTermRepository) FindByID(ctx context.Context, db *gorm.DB, termID uint) (*model.Term, error) {
	return r.findByID(ctx, db.WithContext(ctx), termID, "gormTermRepository.FindByID")
}

func (r *gormTermRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, termID uint) (*model.Term, error) {
	// SQLite ドライバは FOR UPDATE を出力しない (接続1本で直列化している)
	q := tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.findByID(ctx, q, termID, "gormTermRepository.FindByIDForUpdate")
}

func (r *gormTermRepository) findByID(ctx context.Context, q *gorm.DB, termID uint, op string) (*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var term model.Term
	result := q.Where("id_vocabulary = ?", termID).First(&term)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding term by ID in DB",
			"error", result.Error,
			"term_id", termID,
		)
		return nil, fmt.Errorf("%s: %w", op, result.Error)
	}
	return &term, nil
}

func (r *gormTermRepository) FindByLanguage(ctx context.Context, db *gorm.DB, languageID uint, filter model.TermFilter) ([]*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var terms []*model.Term
	result := db.WithContext(ctx).
		Scopes(termFilterScope(filter)).
		Where("language_id = ?", languageID).
		Order("id_vocabulary ASC").
		Find(&terms)
	if result.Error != nil {
		logger.Error("Error finding terms by language in DB",
			"error", result.Error,
			"language_id", languageID,
			"filter", filter.String(),
		)
		return nil, fmt.Errorf("gormTermRepository.FindByLanguage: %w", result.Error)
	}
	return terms, nil
}

func (r *gormTermRepository) CountByLanguage(ctx context.Context, db *gorm.DB, languageID uint, filter model.TermFilter) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Term{}).
		Scopes(termFilterScope(filter)).
		Where("language_id = ?", languageID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting terms by language in DB",
			"error", result.Error,
			"language_id", languageID,
			"filter", filter.String(),
		)
		return 0, fmt.Errorf("gormTermRepository.CountByLanguage: %w", result.Error)
	}
	return count, nil
}

// UpdateProgress は correct_counter と learned だけを1つの UPDATE で書き込む
func (r *gormTermRepository) UpdateProgress(ctx context.Context, tx *gorm.DB, term *model.Term) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Term{}).
		Where("id_vocabulary = ?", term.ID).
		Updates(map[string]interface{}{
			"correct_counter": term.CorrectCounter,
			"learned":         term.Learned,
		})
	if result.Error != nil {
		logger.Error("Error updating term progress in DB",
			"error", result.Error,
			"term_id", term.ID,
		)
		return fmt.Errorf("gormTermRepository.UpdateProgress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTermRepository) CreateBatch(ctx context.Context, tx *gorm.DB, terms []*model.Term) error {
	if len(terms) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).CreateInBatches(terms, 100)
	if result.Error != nil {
		logger.Error("Error creating terms in DB",
			"error", result.Error,
			"count", len(terms),
		)
		return fmt.Errorf("gormTermRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormTermRepository) ExistsByTerms(ctx context.Context, db *gorm.DB, languageID uint, englishTerm, targetTerm string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Term{}).
		Where("language_id = ? AND english_term = ? AND target_language_term = ?", languageID, englishTerm, targetTerm).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"language_id", languageID,
			"english_term", englishTerm,
		)
		return false, fmt.Errorf("gormTermRepository.ExistsByTerms: %w", result.Error)
	}
	return count > 0, nil
}
