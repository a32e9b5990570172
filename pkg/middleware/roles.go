package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empuje-comunitario/gateway/pkg/role"
)

// RequireRole は検証済みクレームのロールが許可リストに含まれるか確認する
// Ginミドルウェアを返す。JWTAuthの後に適用すること。
// 許可されないロールは403で拒否され、バックエンド呼び出しは行われない。
func RequireRole(allowed ...role.Role) gin.HandlerFunc {
	allowedSet := make(map[role.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Missing Authorization header",
			})
			return
		}

		if _, ok := allowedSet[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "Forbidden: insufficient role",
			})
			return
		}

		c.Next()
	}
}
