package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go_5_flashcards/internal/config"
	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を用意する
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

func seedTerms(t *testing.T, db *gorm.DB, lang *model.Language, counters ...int) []*model.Term {
	t.Helper()
	terms := make([]*model.Term, 0, len(counters))
	for i, c := range counters {
		term := &model.Term{
			LanguageID:         lang.ID,
			EnglishTerm:        "word" + string(rune('a'+i)),
			TargetLanguageTerm: "target" + string(rune('a'+i)),
			CorrectCounter:     c,
			Learned:            c >= model.LearnedThreshold,
		}
		terms = append(terms, term)
	}
	require.NoError(t, db.Create(&terms).Error)
	return terms
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := repository.NewDB(config.DatabaseConfig{Driver: "oracle"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestGormLanguageRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormLanguageRepository()

	ar := &model.Language{Code: "ar", Name: "Arabic"}
	require.NoError(t, repo.Create(ctx, db, ar))
	require.NotZero(t, ar.ID)
	require.NoError(t, repo.Create(ctx, db, &model.Language{Code: "es", Name: "Spanish"}))

	t.Run("正常系: コードで取得", func(t *testing.T) {
		got, err := repo.FindByCode(ctx, db, "ar")
		require.NoError(t, err)
		assert.Equal(t, "Arabic", got.Name)
	})

	t.Run("異常系: 存在しないコード", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, db, "xx")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: コード重複", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.Language{Code: "ar", Name: "Arabic again"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: 一覧はID順", func(t *testing.T) {
		all, err := repo.FindAll(ctx, db)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "ar", all[0].Code)
		assert.Equal(t, "es", all[1].Code)
	})
}

func TestGormTermRepository_Filters(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormTermRepository()

	ar := &model.Language{Code: "ar", Name: "Arabic"}
	es := &model.Language{Code: "es", Name: "Spanish"}
	require.NoError(t, db.Create(ar).Error)
	require.NoError(t, db.Create(es).Error)

	seedTerms(t, db, ar, 0, 2, 3, 5)
	seedTerms(t, db, es, 0)

	// learned は立っているがカウンタが閾値未満 (外部から書き換えられた状態)
	odd := &model.Term{LanguageID: ar.ID, EnglishTerm: "odd", TargetLanguageTerm: "odd", Learned: true, CorrectCounter: 1}
	require.NoError(t, db.Create(odd).Error)

	tests := []struct {
		filter    model.TermFilter
		wantCount int64
	}{
		{model.TermFilterNone, 5},
		{model.TermFilterLearned, 3},
		{model.TermFilterPracticing, 3}, // 0, 2, odd(1)
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			terms, err := repo.FindByLanguage(ctx, db, ar.ID, tt.filter)
			require.NoError(t, err)
			assert.Len(t, terms, int(tt.wantCount))
			for _, term := range terms {
				assert.Equal(t, ar.ID, term.LanguageID)
			}

			count, err := repo.CountByLanguage(ctx, db, ar.ID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestGormTermRepository_FindAndUpdate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormTermRepository()

	ar := &model.Language{Code: "ar", Name: "Arabic"}
	require.NoError(t, db.Create(ar).Error)
	terms := seedTerms(t, db, ar, 2)

	t.Run("異常系: 存在しないID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, 9999)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: ロック付き取得と進捗更新", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			term, err := repo.FindByIDForUpdate(ctx, tx, terms[0].ID)
			if err != nil {
				return err
			}
			term.RecordCorrectAnswer()
			return repo.UpdateProgress(ctx, tx, term)
		})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, db, terms[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.CorrectCounter)
		assert.True(t, got.Learned)
		// 他のカラムは変わらない
		assert.Equal(t, terms[0].EnglishTerm, got.EnglishTerm)
	})

	t.Run("異常系: 存在しない単語の更新", func(t *testing.T) {
		err := repo.UpdateProgress(ctx, db, &model.Term{ID: 9999, CorrectCounter: 1})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormTermRepository_CreateBatchAndExists(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormTermRepository()

	ar := &model.Language{Code: "ar", Name: "Arabic"}
	require.NoError(t, db.Create(ar).Error)

	require.NoError(t, repo.CreateBatch(ctx, db, nil))
	require.NoError(t, repo.CreateBatch(ctx, db, []*model.Term{
		{LanguageID: ar.ID, EnglishTerm: "hello", TargetLanguageTerm: "مرحبا"},
		{LanguageID: ar.ID, EnglishTerm: "book", TargetLanguageTerm: "كتاب"},
	}))

	exists, err := repo.ExistsByTerms(ctx, db, ar.ID, "hello", "مرحبا")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByTerms(ctx, db, ar.ID, "hello", "كتاب")
	require.NoError(t, err)
	assert.False(t, exists)
}
