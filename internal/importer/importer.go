// Package importer は単語の一括取り込みファイル (CSV / Excel / YAML) を読み込む。
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go_5_flashcards/internal/model"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// 取り込みファイルの列名 (スプレッドシートの見出し行)
const (
	ColumnEnglish                  = "Words (English)"
	ColumnTarget                   = "Word (Arabic script)"
	ColumnTransliteration          = "Word (Arabic with Roman characters)"
	ColumnExampleSentence          = "Sample sentence (Arabic)"
	ColumnExampleSentenceExplained = "Sample sentence explained"
	ColumnNotes                    = "Notes"
	ColumnLearned                  = "Learned"
	ColumnCorrectCounter           = "Correct Counter"
)

var ErrUnsupportedFormat = errors.New("unsupported import file format")

type Options struct {
	SheetName string // xlsx のシート名。空なら先頭シート
}

// Document は読み込んだファイルの内容。
// 言語は YAML シードにだけ書ける (CSV / Excel では空)。
type Document struct {
	LanguageCode string
	LanguageName string
	Rows         []model.ImportRow
}

// Read は拡張子に応じて path を読み込む
func Read(path string, opts Options) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("importer.Read: %w", err)
		}
		defer f.Close()
		rows, err := ReadCSV(f)
		if err != nil {
			return nil, err
		}
		return &Document{Rows: rows}, nil
	case ".xlsx":
		rows, err := readExcel(path, opts.SheetName)
		if err != nil {
			return nil, err
		}
		return &Document{Rows: rows}, nil
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("importer.Read: %w", err)
		}
		defer f.Close()
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("importer.Read: %w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV は見出し行付きの CSV を読み込む
func ReadCSV(r io.Reader) ([]model.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("importer.ReadCSV: %w", err)
	}
	return parseRecords(records)
}

func readExcel(path, sheet string) ([]model.ImportRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer.readExcel: failed to open file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("importer.readExcel: failed to get rows of sheet %q: %w", sheet, err)
	}
	return parseRecords(records)
}

type yamlSeed struct {
	Language struct {
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"language"`
	Terms []model.ImportRow `yaml:"terms"`
}

// ReadYAML は言語と単語をまとめたシードファイルを読み込む
func ReadYAML(r io.Reader) (*Document, error) {
	var seed yamlSeed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("importer.ReadYAML: %w", err)
	}
	return &Document{
		LanguageCode: strings.TrimSpace(seed.Language.Code),
		LanguageName: strings.TrimSpace(seed.Language.Name),
		Rows:         seed.Terms,
	}, nil
}

// parseRecords は先頭行を見出しとして各行を ImportRow にする
func parseRecords(records [][]string) ([]model.ImportRow, error) {
	if len(records) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{ColumnEnglish, ColumnTarget} {
		if _, ok := index[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("importer: missing required column %q", required)
		}
	}

	cell := func(rec []string, column string) string {
		i, ok := index[strings.ToLower(column)]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]model.ImportRow, 0, len(records)-1)
	for n, rec := range records[1:] {
		lineNo := n + 2
		if isBlank(rec) {
			continue
		}

		learned, err := parseLearned(cell(rec, ColumnLearned))
		if err != nil {
			return nil, fmt.Errorf("importer: row %d: %w", lineNo, err)
		}
		counter, err := parseCounter(cell(rec, ColumnCorrectCounter))
		if err != nil {
			return nil, fmt.Errorf("importer: row %d: %w", lineNo, err)
		}

		rows = append(rows, model.ImportRow{
			EnglishTerm:              cell(rec, ColumnEnglish),
			TargetLanguageTerm:       cell(rec, ColumnTarget),
			Transliteration:          optional(cell(rec, ColumnTransliteration)),
			ExampleSentence:          optional(cell(rec, ColumnExampleSentence)),
			ExampleSentenceExplained: optional(cell(rec, ColumnExampleSentenceExplained)),
			Notes:                    optional(cell(rec, ColumnNotes)),
			Learned:                  learned,
			CorrectCounter:           counter,
		})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseLearned はスプレッドシート由来の真偽値 ("1", "1.0", "TRUE", "yes" など) を解釈する
func parseLearned(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "0", "0.0", "false", "no", "n":
		return false, nil
	case "1", "1.0", "true", "yes", "y":
		return true, nil
	}
	return false, fmt.Errorf("invalid %s value %q", ColumnLearned, s)
}

// parseCounter は正解数を読む。pandas が書き出す "2.0" も受け付ける。
func parseCounter(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid %s value %q", ColumnCorrectCounter, s)
	}
	return int(f), nil
}
