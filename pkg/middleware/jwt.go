package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/empuje-comunitario/gateway/pkg/role"
)

// Claims はJWTトークンのクレーム（ペイロード）を表す。
// 認証済みユーザーの識別情報とロールをリクエスト処理全体で伝播するために使用する。
type Claims struct {
	jwt.RegisteredClaims
	// UserID は認証済みユーザーの数値ID。
	UserID int64 `json:"uid"`
	// Role はuserサービスが解決したロール。
	Role role.Role `json:"role"`
}

// contextKeyClaims はginコンテキストに検証済みクレームを格納するためのキー。
const contextKeyClaims = "claims"

// GenerateJWT はユーザー情報からJWTトークンを生成する。
// クレームは sub（ユーザー名）、uid、role の3つで、有効期限は含めない。
// 検証側はHS256以外の署名アルゴリズムを拒否する。
func GenerateJWT(secret string, userID int64, username string, r role.Role) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: username,
		},
		UserID: userID,
		Role:   r,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// ParseJWT はJWTトークンを検証しクレームを返す。
// 署名の不一致、不正な形式、HS256以外のアルゴリズムはエラーになる。
func ParseJWT(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("JWTトークンの検証に失敗: %w", err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// JWTAuth はBearerトークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストに検証済みクレームを設定する。
// 失敗時はバックエンド呼び出しを行わず401で打ち切る。
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Missing Authorization header",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid token",
			})
			return
		}

		claims, err := ParseJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid token",
			})
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims はGinコンテキストから検証済みクレームを取得する。
// JWTAuthミドルウェアが事前に適用されていない場合はnilを返す。
func GetClaims(c *gin.Context) *Claims {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
