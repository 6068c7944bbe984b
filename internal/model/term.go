// internal/model/term.go
package model

// LearnedThreshold に正解数が達すると learned になる
const LearnedThreshold = 3

// Term は1枚のフラッシュカード (英語 ↔ 学習言語)
type Term struct {
	ID                       uint    `gorm:"column:id_vocabulary;primaryKey"`
	LanguageID               uint    `gorm:"not null;index"`
	EnglishTerm              string  `gorm:"type:text;not null"`
	TargetLanguageTerm       string  `gorm:"type:text;not null"`
	Transliteration          *string `gorm:"type:text"`
	ExampleSentence          *string `gorm:"type:text"`
	ExampleSentenceExplained *string `gorm:"type:text"`
	Notes                    *string `gorm:"type:text"`
	Learned                  bool    `gorm:"not null;default:false"`
	CorrectCounter           int     `gorm:"not null;default:0;check:correct_counter >= 0"`

	Language *Language `gorm:"foreignKey:LanguageID" json:"-"`
}

func (Term) TableName() string {
	return "terms"
}

// RecordCorrectAnswer は正解時の状態遷移。
// カウンタを1増やし、閾値に達したら同じ更新で learned を立てる。
func (t *Term) RecordCorrectAnswer() {
	t.CorrectCounter++
	if t.CorrectCounter >= LearnedThreshold {
		t.Learned = true
	}
}

// IsPracticing は練習モードの対象か (learned の値は見ない)
func (t *Term) IsPracticing() bool {
	return t.CorrectCounter < LearnedThreshold
}

// TermFilter は言語内の単語を絞り込む条件
type TermFilter int

const (
	TermFilterNone       TermFilter = iota // 条件なし
	TermFilterLearned                      // learned = true
	TermFilterPracticing                   // correct_counter < LearnedThreshold
)

func (f TermFilter) String() string {
	switch f {
	case TermFilterLearned:
		return "learned"
	case TermFilterPracticing:
		return "practicing"
	default:
		return "none"
	}
}
