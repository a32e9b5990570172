// Package middleware はゲートウェイのGinベースHTTP APIで使用する共通ミドルウェアを提供する。
//
// Bearerトークンの検証（認証ゲート）、ロールによる認可ゲート、
// リクエストID、パニックリカバリ、CORS設定を含む。
// 認証・認可ゲートで拒否されたリクエストはバックエンドに到達しない。
package middleware
