// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "go_5_flashcards"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8002"
	DefaultDatabaseDriver  = "postgres"
	DefaultLogLevel        = "info"
	DefaultLanguageCode    = "ar"
	DefaultLanguageName    = "Arabic"
	DefaultSlowThresholdMs = 500
	DefaultCORSOrigin      = "http://localhost:3000" // React開発サーバ
)
