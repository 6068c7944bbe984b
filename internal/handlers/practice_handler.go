// internal/handlers/practice_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_flashcards/internal/config"
	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/service"
	"go_5_flashcards/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type PracticeHandler struct {
	service         service.PracticeService
	defaultLanguage string
	logger          *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, defaultLanguage string, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLanguage == "" {
		defaultLanguage = config.DefaultLanguageCode
	}
	return &PracticeHandler{
		service:         s,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// GetRandomFlashcard は練習用の単語をランダムに1件返すハンドラ
func (h *PracticeHandler) GetRandomFlashcard(w http.ResponseWriter, r *http.Request) {
	languageCode := webutil.QueryString(r, "language_code", h.defaultLanguage)
	logger := h.logger.With(slog.String("handler", "GetRandomFlashcard"), slog.String("language_code", languageCode))

	learnedOnly, err := webutil.QueryBool(r, "learned_only", false)
	if err != nil {
		logger.Warn("Invalid learned_only parameter", slog.String("value", r.URL.Query().Get("learned_only")))
		webutil.HandleError(w, logger, err)
		return
	}

	term, err := h.service.SelectPracticeTerm(r.Context(), languageCode, learnedOnly)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No flashcard to serve", slog.String("reason", err.Error()))
		} else {
			logger.Error("Error selecting flashcard in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewFlashcardResponse(term), logger)
}

// SubmitAnswer は回答を採点するハンドラ
func (h *PracticeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))

	var req model.AnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}
	termID := *req.TermID
	logger = logger.With(slog.Uint64("term_id", uint64(termID)), slog.String("answer_type", req.AnswerType))

	result, err := h.service.GradeAnswer(r.Context(), termID, *req.UserAnswer, req.AnswerType)
	if err != nil {
		logger.Warn("Error grading answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer graded", slog.Bool("correct", result.Correct))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetStats は学習状況の集計を返すハンドラ
func (h *PracticeHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	languageCode := webutil.QueryString(r, "language_code", h.defaultLanguage)
	logger := h.logger.With(slog.String("handler", "GetStats"), slog.String("language_code", languageCode))

	stats, err := h.service.GetStats(r.Context(), languageCode)
	if err != nil {
		logger.Warn("Error getting stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
