package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_flashcards/internal/handlers"
	"go_5_flashcards/internal/model"
	svc_mocks "go_5_flashcards/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLanguageHandler_GetLanguages(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(m *svc_mocks.LanguageService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "正常系: 一覧を返す",
			setupMock: func(m *svc_mocks.LanguageService) {
				m.On("ListLanguages", mock.Anything).Return([]*model.LanguageResponse{
					{ID: 1, Code: "ar", Name: "Arabic"},
					{ID: 2, Code: "es", Name: "Spanish"},
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"code":"ar","name":"Arabic"},{"id":2,"code":"es","name":"Spanish"}]`,
		},
		{
			name: "正常系: 0件は空配列",
			setupMock: func(m *svc_mocks.LanguageService) {
				m.On("ListLanguages", mock.Anything).Return(nil, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "異常系: サービスエラー",
			setupMock: func(m *svc_mocks.LanguageService) {
				m.On("ListLanguages", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":{"code":"INTERNAL_SERVER_ERROR","message":"An internal server error occurred."}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := svc_mocks.NewLanguageService(t)
			tc.setupMock(svc)
			h := handlers.NewLanguageHandler(svc, discardLogger)
			r := chi.NewRouter()
			r.Get("/languages", h.GetLanguages)
			server := httptest.NewServer(r)
			defer server.Close()

			body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/languages"}, tc.expectedCode)
			assert.JSONEq(t, tc.expectedBody, string(body))
		})
	}
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestSystemHandler(t *testing.T) {
	t.Run("正常系: ルート", func(t *testing.T) {
		h := handlers.NewSystemHandler(stubPinger{}, discardLogger)
		rec := httptest.NewRecorder()
		h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Flashcards API is running!"}`, rec.Body.String())
	})

	t.Run("正常系: ヘルスチェック", func(t *testing.T) {
		h := handlers.NewSystemHandler(stubPinger{}, discardLogger)
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("異常系: DBに接続できない", func(t *testing.T) {
		h := handlers.NewSystemHandler(stubPinger{err: errors.New("refused")}, discardLogger)
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		verifyErrorResponse(t, rec.Body.Bytes(), "DB_UNAVAILABLE")
	})
}
