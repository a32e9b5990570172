// Package gateway はゲートウェイサービスの内部実装を提供する。
//
// REST/JSONの受け口を公開し、業務ロジックは3つのバックエンドサービス
// （user・inventory・event）へのgRPC呼び出しに委譲する。
// 各ルートは認証ゲート→ロールゲート→要求組み立て→バックエンド呼び出し→
// 応答変換（失敗時はステータスコード変換）という固定の合成で処理される。
// ゲートウェイ自身は状態を持たず、キャッシュもリトライも行わない。
package gateway
