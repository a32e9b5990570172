package backend

import (
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxStreamElements は1回のList操作で受信するストリーム要素数の上限。
// 異常なストリームでメモリが際限なく伸びるのを防ぐ。
const maxStreamElements = 10000

// errStreamTooLong はストリームが要素数上限を超えたことを表す。
var errStreamTooLong = status.Error(codes.ResourceExhausted, "stream element limit exceeded")

// collect はサーバーストリームを受信順のままスライスに取り込む。
// ストリームの途中でエラーが発生した場合、受信済みの要素は破棄して
// エラーのみを返す。部分的な結果を呼び出し側に渡すことはない。
func collect[T any](stream grpc.ClientStream) ([]T, error) {
	out := []T{}
	for {
		var elem T
		if err := stream.RecvMsg(&elem); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if len(out) >= maxStreamElements {
			return nil, errStreamTooLong
		}
		out = append(out, elem)
	}
}

// openServerStream はサーバーストリームRPCを開始し、要求メッセージを送信する。
func openServerStream(stream grpc.ClientStream, req any) error {
	if err := stream.SendMsg(req); err != nil {
		return err
	}
	return stream.CloseSend()
}
