// internal/handlers/language_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/service"
	"go_5_flashcards/internal/webutil"
)

type LanguageHandler struct {
	service service.LanguageService
	logger  *slog.Logger
}

func NewLanguageHandler(s service.LanguageService, logger *slog.Logger) *LanguageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LanguageHandler{service: s, logger: logger}
}

// GetLanguages は登録済みの言語一覧を返すハンドラ
func (h *LanguageHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLanguages"))

	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		logger.Error("Error listing languages in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if languages == nil {
		languages = []*model.LanguageResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, languages, logger)
}
