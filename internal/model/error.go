// internal/model/error.go
package model

import "errors"

// アプリケーション共通のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// 練習エンジン固有のエラー (errors.Is で上の共通エラーとしても判定できる)
var (
	ErrLanguageNotFound  = &DomainError{Code: "LANGUAGE_NOT_FOUND", Message: "Language not found", Kind: ErrNotFound}
	ErrNoEligibleTerms   = &DomainError{Code: "NO_FLASHCARDS", Message: "No flashcards available", Kind: ErrNotFound}
	ErrTermNotFound      = &DomainError{Code: "TERM_NOT_FOUND", Message: "Term not found", Kind: ErrNotFound}
	ErrInvalidAnswerType = &DomainError{Code: "INVALID_ANSWER_TYPE", Message: "Invalid answer_type. Use 'english' or 'arabic'", Kind: ErrInvalidInput}
)

// DomainError は分類 (Kind) を持つドメインエラー
type DomainError struct {
	Code    string
	Message string
	Kind    error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// ErrorDetail はクライアントに返すエラー情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細と、原因となったエラーを保持する
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
