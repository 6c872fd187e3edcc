// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "KanaPractice"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultMaxTextLength   = 200
	DefaultSessionLimit    = 100
	DefaultTokenTTLMinutes = 60
)
