package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go_5_flashcards/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドは無視します (既存クライアントが余分なキーを送るため)。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON for this endpoint.", "", model.ErrInvalidInput)
	}
	return nil
}

// QueryString はクエリパラメータを取得し、空なら def を返します
func QueryString(r *http.Request, key, def string) string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	return v
}

// QueryBool はクエリパラメータを bool として解釈します (未指定なら def)
func QueryBool(r *http.Request, key string, def bool) (bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, model.NewAppError("INVALID_QUERY_PARAM", key+" must be a boolean.", key, model.ErrInvalidInput)
	}
	return b, nil
}
