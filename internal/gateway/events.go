package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/empuje-comunitario/gateway/internal/backend"
	"github.com/empuje-comunitario/gateway/pkg/middleware"
)

// createEventRequest は POST /events のリクエストボディ。
type createEventRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EventDatetime string `json:"event_datetime"`
}

// updateEventRequest は PUT /events/:id のリクエストボディ。
// EventDatetime が省略された場合は「日時は変更なし」として転送する。
type updateEventRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EventDatetime string `json:"event_datetime"`
}

// memberRequest は assign/remove のリクエストボディ。
type memberRequest struct {
	UserID int64 `json:"user_id"`
}

// parseEventDatetime はISO形式の日時文字列をUTCエポック秒に変換する。
// タイムゾーン付きのRFC3339と、タイムゾーンなしの形式（UTCとして解釈）の
// 両方を受け付ける。
func parseEventDatetime(s string) (int64, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix(), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// handleListEvents はイベント一覧ハンドラを返す。認証済みであれば全ロールが
// 参照できる。eventサービスのサーバーストリームを受信順のまま集約して返す。
func (s *Server) handleListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := s.events.ListEvents(c.Request.Context(), &backend.ListEventsRequest{})
		if err != nil {
			translateRPCError(c, err, nil)
			return
		}

		out := make([]gin.H, 0, len(events))
		for _, e := range events {
			out = append(out, gin.H{"id": e.ID, "name": e.Name})
		}
		c.JSON(http.StatusOK, gin.H{"events": out})
	}
}

// handleCreateEvent はイベント作成ハンドラを返す。
func (s *Server) handleCreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		if req.EventDatetime == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "event_datetime is required (ISO)"})
			return
		}

		epoch, err := parseEventDatetime(req.EventDatetime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid event_datetime format (ISO)"})
			return
		}

		reply, err := s.events.CreateEvent(c.Request.Context(), &backend.CreateEventRequest{
			Name:          req.Name,
			Description:   req.Description,
			EventDatetime: epoch,
		})
		if err != nil {
			translateRPCError(c, err, eventCreateOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID})
	}
}

// handleUpdateEvent はイベント更新ハンドラを返す。
func (s *Server) handleUpdateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var req updateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		// 0は「変更なし」の契約値。省略時はそちらに倒す。
		var epoch int64
		if req.EventDatetime != "" {
			parsed, err := parseEventDatetime(req.EventDatetime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid event_datetime format (ISO)"})
				return
			}
			epoch = parsed
		}

		reply, err := s.events.UpdateEvent(c.Request.Context(), &backend.UpdateEventRequest{
			ID:            id,
			Name:          req.Name,
			Description:   req.Description,
			EventDatetime: epoch,
		})
		if err != nil {
			translateRPCError(c, err, eventWriteOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID, "name": reply.Name})
	}
}

// handleDeleteEvent はイベント削除ハンドラを返す。
// 操作者のIDを監査情報としてeventサービスに記録させる。
func (s *Server) handleDeleteEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}

		reply, err := s.events.DeleteEvent(c.Request.Context(), &backend.DeleteEventRequest{
			ID:          id,
			RequestedBy: claims.UserID,
		})
		if err != nil {
			translateRPCError(c, err, eventWriteOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": reply.Success, "message": reply.Message})
	}
}

// handleAssignMember は運営者による任意メンバーの割り当てハンドラを返す。
func (s *Server) handleAssignMember() gin.HandlerFunc {
	return s.assignHandler(func(c *gin.Context) (int64, bool) {
		var req memberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return 0, false
		}
		return req.UserID, true
	})
}

// handleRemoveMember は運営者による任意メンバーの除外ハンドラを返す。
func (s *Server) handleRemoveMember() gin.HandlerFunc {
	return s.removeHandler(func(c *gin.Context) (int64, bool) {
		var req memberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return 0, false
		}
		return req.UserID, true
	})
}

// handleParticipate は認証ユーザー自身のイベント参加ハンドラを返す。
// 対象ユーザーはトークンの本人に固定され、ボディは参照しない。
func (s *Server) handleParticipate() gin.HandlerFunc {
	return s.assignHandler(func(c *gin.Context) (int64, bool) {
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return 0, false
		}
		return claims.UserID, true
	})
}

// handleLeave は認証ユーザー自身のイベント離脱ハンドラを返す。
func (s *Server) handleLeave() gin.HandlerFunc {
	return s.removeHandler(func(c *gin.Context) (int64, bool) {
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return 0, false
		}
		return claims.UserID, true
	})
}

// assignHandler はAssignMember呼び出しの共通部。対象ユーザーIDの解決だけが
// 運営者経路と自己参加経路で異なる。
func (s *Server) assignHandler(targetID func(*gin.Context) (int64, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := pathID(c)
		if !ok {
			return
		}
		userID, ok := targetID(c)
		if !ok {
			return
		}
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}

		reply, err := s.events.AssignMember(c.Request.Context(), &backend.AssignMemberRequest{
			EventID:    eventID,
			UserID:     userID,
			AssignedBy: claims.UserID,
		})
		if err != nil {
			translateRPCError(c, err, eventMemberOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID})
	}
}

// removeHandler はRemoveMember呼び出しの共通部。
func (s *Server) removeHandler(targetID func(*gin.Context) (int64, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := pathID(c)
		if !ok {
			return
		}
		userID, ok := targetID(c)
		if !ok {
			return
		}
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}

		reply, err := s.events.RemoveMember(c.Request.Context(), &backend.RemoveMemberRequest{
			EventID:   eventID,
			UserID:    userID,
			RemovedBy: claims.UserID,
		})
		if err != nil {
			translateRPCError(c, err, eventMemberOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID})
	}
}
