package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errOverride はバックエンドのgRPCコードに対するルート固有のHTTP変換。
type errOverride struct {
	// Status は変換後のHTTPステータスコード。
	Status int
	// Detail は固定の詳細メッセージ。空の場合はバックエンドの詳細を使用する。
	Detail string
}

// errOverrides はgRPCコードからルート固有変換へのテーブル。
// テーブルに無いコードは一律502に変換される。
type errOverrides map[codes.Code]errOverride

// ルートごとの変換テーブル。バックエンドの業務的な失敗だけを
// ドメインにふさわしいHTTPステータスへ写像し、それ以外は502に落とす。
var (
	loginOverrides = errOverrides{
		codes.Unauthenticated: {Status: http.StatusUnauthorized, Detail: "Invalid credentials"},
	}
	userLookupOverrides = errOverrides{
		codes.NotFound: {Status: http.StatusNotFound, Detail: "User not found"},
	}
	userWriteOverrides = errOverrides{
		codes.NotFound:        {Status: http.StatusNotFound, Detail: "User not found"},
		codes.InvalidArgument: {Status: http.StatusBadRequest},
	}
	userCreateOverrides = errOverrides{
		codes.InvalidArgument: {Status: http.StatusBadRequest},
	}
	itemAddOverrides = errOverrides{
		codes.InvalidArgument: {Status: http.StatusBadRequest},
	}
	itemWriteOverrides = errOverrides{
		codes.NotFound:        {Status: http.StatusNotFound, Detail: "Item not found"},
		codes.InvalidArgument: {Status: http.StatusBadRequest},
	}
	itemAdjustOverrides = errOverrides{
		codes.NotFound:           {Status: http.StatusNotFound, Detail: "Item not found"},
		codes.FailedPrecondition: {Status: http.StatusPreconditionFailed},
	}
	eventCreateOverrides = errOverrides{
		codes.InvalidArgument: {Status: http.StatusBadRequest},
	}
	eventWriteOverrides = errOverrides{
		codes.NotFound:        {Status: http.StatusNotFound, Detail: "Event not found"},
		codes.InvalidArgument: {Status: http.StatusBadRequest},
	}
	eventMemberOverrides = errOverrides{
		codes.NotFound: {Status: http.StatusNotFound, Detail: "Event not found"},
	}
)

// translateRPCError はバックエンド呼び出しの失敗をHTTPレスポンスに変換して書き込む。
// overridesに該当するコードはルート固有のステータスへ、それ以外のコードと
// トランスポート障害（バックエンド到達不能を含む）はgRPCコード名を含む502へ
// 変換する。内部のスタック情報は決してクライアントに漏らさない。
func translateRPCError(c *gin.Context, err error, overrides errOverrides) {
	st := status.Convert(err)

	if ov, found := overrides[st.Code()]; found {
		detail := ov.Detail
		if detail == "" {
			detail = st.Message()
		}
		if detail == "" {
			detail = "gRPC error: " + st.Code().String()
		}
		c.JSON(ov.Status, gin.H{"detail": detail})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"detail": "gRPC error: " + st.Code().String()})
}
