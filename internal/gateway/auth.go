package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empuje-comunitario/gateway/internal/backend"
	"github.com/empuje-comunitario/gateway/pkg/middleware"
	"github.com/empuje-comunitario/gateway/pkg/role"
)

// loginRequest は POST /auth/login のリクエストボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin はログインハンドラを返す。
// 資格情報の検証はuserサービスに委譲し、成功時にはバックエンドが解決した
// ロールを埋め込んだJWTを発行する。userサービスに到達できない場合は
// 代替の認証経路を持たず、そのまま502を返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and password required"})
			return
		}

		reply, err := s.users.Login(c.Request.Context(), &backend.LoginRequest{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			translateRPCError(c, err, loginOverrides)
			return
		}

		r, ok := role.Parse(reply.User.Role)
		if !ok {
			// バックエンドが契約外のロール名を返した。暗黙のデフォルトには落とさない。
			c.JSON(http.StatusBadGateway, gin.H{"detail": "unknown role in backend response"})
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, reply.User.ID, reply.User.Username, r)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to sign token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"jwt": token,
			"user": gin.H{
				"id":       reply.User.ID,
				"username": reply.User.Username,
				"role":     r,
			},
		})
	}
}
