package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empuje-comunitario/gateway/internal/backend"
)

// addItemRequest は POST /inventory のリクエストボディ。
type addItemRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
}

// updateItemRequest は PUT /inventory/:id のリクエストボディ。
// Quantity が省略された場合は「数量は変更なし」として転送する。
type updateItemRequest struct {
	Description string `json:"description"`
	Quantity    *int32 `json:"quantity"`
}

// adjustQuantityRequest は POST /inventory/:id/adjust のリクエストボディ。
type adjustQuantityRequest struct {
	Delta int32 `json:"delta"`
}

// handleListItems は在庫一覧ハンドラを返す。
// inventoryサービスのサーバーストリームを受信順のまま1つのコレクションに
// 集約して返す。
func (s *Server) handleListItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := s.inventory.ListItems(c.Request.Context(), &backend.ListItemsRequest{})
		if err != nil {
			translateRPCError(c, err, nil)
			return
		}

		out := make([]gin.H, 0, len(items))
		for _, item := range items {
			out = append(out, gin.H{
				"id":          item.ID,
				"category":    item.Category,
				"description": item.Description,
				"quantity":    item.Quantity,
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// handleAddItem は在庫登録ハンドラを返す。
// カテゴリ名は列挙型に正規化してから転送する。未知のカテゴリは
// CATEGORY_UNKNOWNとして送り、妥当性検証はinventoryサービスに委ねる。
func (s *Server) handleAddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		reply, err := s.inventory.AddItem(c.Request.Context(), &backend.AddItemRequest{
			Category:    backend.NormalizeCategory(req.Category),
			Description: req.Description,
			Quantity:    req.Quantity,
		})
		if err != nil {
			translateRPCError(c, err, itemAddOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID})
	}
}

// handleUpdateItem は在庫更新ハンドラを返す。
func (s *Server) handleUpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		// 負値は「変更なし」の契約値。省略時はそちらに倒す。
		quantity := int32(-1)
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		reply, err := s.inventory.UpdateItem(c.Request.Context(), &backend.UpdateItemRequest{
			ID:          id,
			Description: req.Description,
			Quantity:    quantity,
		})
		if err != nil {
			translateRPCError(c, err, itemWriteOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID, "quantity": reply.Quantity})
	}
}

// handleDeleteItem は在庫削除ハンドラを返す。論理削除であり、
// 削除済みアイテムへの再実行はsuccess=falseとして200で報告される。
func (s *Server) handleDeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		reply, err := s.inventory.DeleteItem(c.Request.Context(), &backend.DeleteItemRequest{ID: id})
		if err != nil {
			translateRPCError(c, err, itemWriteOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": reply.Success, "message": reply.Message})
	}
}

// handleAdjustQuantity は在庫数量増減ハンドラを返す。
// 結果が負になる増減はinventoryサービスが拒否し、412に変換される。
func (s *Server) handleAdjustQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		var req adjustQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		reply, err := s.inventory.AdjustQuantity(c.Request.Context(), &backend.AdjustQuantityRequest{
			ID:    id,
			Delta: req.Delta,
		})
		if err != nil {
			translateRPCError(c, err, itemAdjustOverrides)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": reply.ID, "quantity": reply.Quantity})
	}
}
