// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App struct {
		MaxTextLength int  `mapstructure:"max_text_length"` // 表示文の最大長（rune）
		SessionLimit  int  `mapstructure:"session_limit"`   // 同時セッション数の上限
		UseKagome     bool `mapstructure:"use_kagome"`      // 形態素解析フォールバックを使うか
	} `mapstructure:"app"`
	Auth struct {
		Enabled         bool   `mapstructure:"enabled"`
		JWTSecret       string `mapstructure:"jwt_secret"`
		TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
	} `mapstructure:"auth"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からの上書き (例: APP_AUTH_ENABLED)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default '" + DefaultServerPort + "'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.MaxTextLength <= 0 {
		log.Printf("App max text length not set or invalid, using default '%d'", DefaultMaxTextLength)
		Cfg.App.MaxTextLength = DefaultMaxTextLength
	}
	if Cfg.App.SessionLimit <= 0 {
		log.Printf("App session limit not set or invalid, using default '%d'", DefaultSessionLimit)
		Cfg.App.SessionLimit = DefaultSessionLimit
	}
	if Cfg.Auth.TokenTTLMinutes <= 0 {
		Cfg.Auth.TokenTTLMinutes = DefaultTokenTTLMinutes
	}
	if !viper.IsSet("app.use_kagome") {
		// 辞書なしでも動くように、未設定なら形態素解析フォールバックは有効
		Cfg.App.UseKagome = true
	}
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}
	if Cfg.Auth.Enabled && Cfg.Auth.JWTSecret == "" {
		log.Println("Warning: Auth is enabled but jwt_secret is not set.")
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Max Text Length: %d", Cfg.App.MaxTextLength)
	log.Printf("Session Limit: %d", Cfg.App.SessionLimit)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
