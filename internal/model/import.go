// internal/model/import.go
package model

import "github.com/google/uuid"

// ImportRow は一括取り込みファイルの1行
type ImportRow struct {
	EnglishTerm              string  `yaml:"english"`
	TargetLanguageTerm       string  `yaml:"target"`
	Transliteration          *string `yaml:"transliteration"`
	ExampleSentence          *string `yaml:"example_sentence"`
	ExampleSentenceExplained *string `yaml:"example_sentence_explained"`
	Notes                    *string `yaml:"notes"`
	Learned                  bool    `yaml:"learned"`
	CorrectCounter           int     `yaml:"correct_counter"`
}

// ImportResult は取り込み結果のサマリ
type ImportResult struct {
	BatchID    uuid.UUID
	LanguageID uint
	Total      int
	Created    int
	Skipped    int // 必須項目が空の行
	Duplicates int // 既に登録済みの (english, target) の組
}
