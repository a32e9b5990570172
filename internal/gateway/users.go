package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empuje-comunitario/gateway/internal/backend"
	"github.com/empuje-comunitario/gateway/pkg/role"
)

// createUserRequest は POST /users のリクエストボディ。
// 省略された任意項目はバックエンド契約のデフォルト値で補完する。
type createUserRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProfileImage string `json:"profile_image"`
}

// updateUserRequest は PUT /users/:id のリクエストボディ。
// IsActive が省略された場合はtrueとして扱う。
type updateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsActive  *bool  `json:"is_active"`
}

// handleListUsers はユーザー一覧ハンドラを返す。
// page/sizeクエリパラメータはそのままuserサービスに転送し、
// サーバーストリームを受信順のまま1つのコレクションに集約して返す。
func (s *Server) handleListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := queryIntOr(c, "page", 1)
		size := queryIntOr(c, "size", 10)

		users, err := s.users.ListUsers(c.Request.Context(), &backend.ListUsersRequest{
			Page: int32(page),
			Size: int32(size),
		})
		if err != nil {
			translateRPCError(c, err, nil)
			return
		}

		out := make([]gin.H, 0, len(users))
		for _, u := range users {
			out = append(out, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}

// handleCreateUser はユーザー作成ハンドラを返す。
// ロールが省略された場合はVOLUNTARIOを補完する。未知のロール名は
// バックエンドに送らず400で拒否する。
func (s *Server) handleCreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		userRole := role.RoleVoluntario
		if req.Role != "" {
			parsed, ok := role.Parse(req.Role)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "unknown role: " + req.Role})
				return
			}
			userRole = parsed
		}

		reply, err := s.users.CreateUser(c.Request.Context(), &backend.CreateUserRequest{
			Username:     req.Username,
			Email:        req.Email,
			Password:     req.Password,
			Role:         userRole.String(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
			Address:      req.Address,
			ProfileImage: req.ProfileImage,
		})
		if err != nil {
			translateRPCError(c, err, userCreateOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID})
	}
}

// handleGetUser は単一ユーザー取得ハンドラを返す。
func (s *Server) handleGetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		reply, err := s.users.GetUser(c.Request.Context(), &backend.GetUserRequest{ID: id})
		if err != nil {
			translateRPCError(c, err, userLookupOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       reply.ID,
			"username": reply.Username,
			"email":    reply.Email,
		})
	}
}

// handleUpdateUser はユーザー更新ハンドラを返す。
// ロールが指定された場合のみ妥当性を検証する。空文字列は「変更なし」として
// userサービスに転送する。
func (s *Server) handleUpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		if req.Role != "" {
			if _, ok := role.Parse(req.Role); !ok {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "unknown role: " + req.Role})
				return
			}
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		reply, err := s.users.UpdateUser(c.Request.Context(), &backend.UpdateUserRequest{
			ID:        id,
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			Role:      req.Role,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Address:   req.Address,
			IsActive:  isActive,
		})
		if err != nil {
			translateRPCError(c, err, userWriteOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       reply.ID,
			"username": reply.Username,
			"email":    reply.Email,
		})
	}
}

// handleDeleteUser はユーザー削除ハンドラを返す。
func (s *Server) handleDeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		if _, err := s.users.DeleteUser(c.Request.Context(), &backend.DeleteUserRequest{ID: id}); err != nil {
			translateRPCError(c, err, userLookupOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
