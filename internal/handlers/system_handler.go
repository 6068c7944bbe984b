// internal/handlers/system_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_5_flashcards/internal/model"
	"go_5_flashcards/internal/webutil"
)

// Pinger は DB の疎通確認ができるもの (*sql.DB)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SystemHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewSystemHandler(db Pinger, logger *slog.Logger) *SystemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemHandler{db: db, logger: logger}
}

// Root は稼働確認用のメッセージを返す
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Flashcards API is running!"}, h.logger)
}

// Health は DB に ping して結果を返す
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "DB_UNAVAILABLE", Message: "Database is not reachable."},
		}, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
