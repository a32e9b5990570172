// Package backend は3つのバックエンドサービス（user・inventory・event）への
// 型付きgRPCクライアントを提供する。
//
// 各クライアントはインタフェースとして公開し、gRPC実装は
// grpc.ClientConnInterface の薄いラッパーとして実装する。
// ゲートウェイは業務ロジックを持たないため、ここのDTOはバックエンド契約の
// パススルーであり、欠落した任意項目のデフォルト補完以外の変換は行わない。
// サーバーストリームを返すList系操作は、応答前に受信順のままスライスへ
// 完全に取り込む（部分的な結果をクライアントへ流すことはない）。
package backend
