// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "MedAdherenceKeep"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultAdherenceWindowDays = 30 // ダッシュボードの服用率は直近30日で集計する
	DefaultAccessTokenTTL      = 24 * time.Hour
	DefaultAuthEnabled         = true
)
