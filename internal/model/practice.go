// internal/model/practice.go
package model

// AnswerType は回答をどちらのフィールドと比較するか
type AnswerType string

const (
	AnswerTypeSource AnswerType = "source" // english_term
	AnswerTypeTarget AnswerType = "target" // target_language_term
)

// ParseAnswerType はリクエストの answer_type を解釈する。
// 旧クライアントの "english" / "arabic" もそれぞれ source / target として受け付ける。
// 大文字小文字や前後の空白は補正しない (完全一致のみ)。
func ParseAnswerType(s string) (AnswerType, error) {
	switch s {
	case "source", "english":
		return AnswerTypeSource, nil
	case "target", "arabic":
		return AnswerTypeTarget, nil
	default:
		return "", ErrInvalidAnswerType
	}
}

// ReferenceAnswer は比較対象となる正解 (正規化前) を返す
func (t *Term) ReferenceAnswer(answerType AnswerType) (string, error) {
	switch answerType {
	case AnswerTypeSource:
		return t.EnglishTerm, nil
	case AnswerTypeTarget:
		return t.TargetLanguageTerm, nil
	default:
		return "", ErrInvalidAnswerType
	}
}

// FlashcardResponse は練習用カードのレスポンスDTO
type FlashcardResponse struct {
	ID                       uint    `json:"id_vocabulary"`
	EnglishTerm              string  `json:"english_term"`
	TargetLanguageTerm       string  `json:"target_language_term"`
	Transliteration          *string `json:"transliteration"`
	ExampleSentence          *string `json:"example_sentence"`
	ExampleSentenceExplained *string `json:"example_sentence_explained"`
	Notes                    *string `json:"notes"`
	CorrectCounter           int     `json:"correct_counter"`
}

func NewFlashcardResponse(t *Term) *FlashcardResponse {
	return &FlashcardResponse{
		ID:                       t.ID,
		EnglishTerm:              t.EnglishTerm,
		TargetLanguageTerm:       t.TargetLanguageTerm,
		Transliteration:          t.Transliteration,
		ExampleSentence:          t.ExampleSentence,
		ExampleSentenceExplained: t.ExampleSentenceExplained,
		Notes:                    t.Notes,
		CorrectCounter:           t.CorrectCounter,
	}
}

// AnswerRequest は回答送信リクエストのDTO。
// term_id / user_answer は「キーがあること」だけを必須とする (0 や空文字は採点側で扱う)。
type AnswerRequest struct {
	TermID     *uint   `json:"term_id" validate:"required"`
	UserAnswer *string `json:"user_answer" validate:"required"`
	AnswerType string  `json:"answer_type" validate:"required"`
}

// AnswerResult は採点結果
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Message       string `json:"message"`
}

// StatsResponse は言語ごとの学習状況
type StatsResponse struct {
	TotalTerms         int64   `json:"total_terms"`
	LearnedTerms       int64   `json:"learned_terms"`
	PracticeTerms      int64   `json:"practice_terms"`
	ProgressPercentage float64 `json:"progress_percentage"`
}
