// internal/handlers/router.go
package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes は公開APIのルートを r に登録する。
// 既存のフロントエンドが直接叩くため、パスにプレフィックスは付けない。
func RegisterRoutes(r chi.Router, system *SystemHandler, practice *PracticeHandler, language *LanguageHandler) {
	r.Get("/", system.Root)
	r.Get("/health", system.Health)

	r.Route("/flashcards", func(r chi.Router) {
		r.Get("/random", practice.GetRandomFlashcard)
		r.Post("/answer", practice.SubmitAnswer)
		r.Get("/stats", practice.GetStats)
	})

	r.Get("/languages", language.GetLanguages)
}
