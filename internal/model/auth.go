// internal/model/auth.go
package model

import "github.com/golang-jwt/jwt/v5"

// コンテキストキーの型（衝突防止のため専用型にする）
type contextKey string

// SessionIDKey はリクエストコンテキストにセッションIDを格納するキーです
const SessionIDKey contextKey = "session_id"

// SessionClaims は練習セッショントークンのJWTクレームです。
// sub にセッションIDを入れます。
type SessionClaims struct {
	jwt.RegisteredClaims
}
