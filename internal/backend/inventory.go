package backend

import (
	"context"

	"google.golang.org/grpc"
)

// InventoryClient は inventoryサービスへの呼び出しインタフェース。
type InventoryClient interface {
	// AddItem は在庫アイテムを登録する。
	AddItem(ctx context.Context, req *AddItemRequest) (*ItemReply, error)
	// UpdateItem は在庫アイテムを更新する。
	UpdateItem(ctx context.Context, req *UpdateItemRequest) (*ItemReply, error)
	// DeleteItem は在庫アイテムを論理削除する。
	DeleteItem(ctx context.Context, req *DeleteItemRequest) (*DeleteItemReply, error)
	// AdjustQuantity は在庫数量を増減する。結果が負になる場合はバックエンドが拒否する。
	AdjustQuantity(ctx context.Context, req *AdjustQuantityRequest) (*ItemReply, error)
	// ListItems はアイテム一覧のサーバーストリームを受信順のまま取り込んで返す。
	ListItems(ctx context.Context, req *ListItemsRequest) ([]ItemReply, error)
}

// inventoryClient は grpc.ClientConnInterface 上のInventoryClient実装。
type inventoryClient struct {
	cc grpc.ClientConnInterface
}

// NewInventoryClient は inventoryサービスのgRPCクライアントを生成する。
func NewInventoryClient(cc grpc.ClientConnInterface) InventoryClient {
	return &inventoryClient{cc: cc}
}

// listItemsDesc は ListItems サーバーストリームの定義。
var listItemsDesc = grpc.StreamDesc{
	StreamName:    "ListItems",
	ServerStreams: true,
}

func (c *inventoryClient) AddItem(ctx context.Context, req *AddItemRequest) (*ItemReply, error) {
	out := new(ItemReply)
	if err := c.cc.Invoke(ctx, "/inventory.InventoryService/AddItem", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryClient) UpdateItem(ctx context.Context, req *UpdateItemRequest) (*ItemReply, error) {
	out := new(ItemReply)
	if err := c.cc.Invoke(ctx, "/inventory.InventoryService/UpdateItem", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryClient) DeleteItem(ctx context.Context, req *DeleteItemRequest) (*DeleteItemReply, error) {
	out := new(DeleteItemReply)
	if err := c.cc.Invoke(ctx, "/inventory.InventoryService/DeleteItem", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryClient) AdjustQuantity(ctx context.Context, req *AdjustQuantityRequest) (*ItemReply, error) {
	out := new(ItemReply)
	if err := c.cc.Invoke(ctx, "/inventory.InventoryService/AdjustQuantity", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryClient) ListItems(ctx context.Context, req *ListItemsRequest) ([]ItemReply, error) {
	stream, err := c.cc.NewStream(ctx, &listItemsDesc, "/inventory.InventoryService/ListItems")
	if err != nil {
		return nil, err
	}
	if err := openServerStream(stream, req); err != nil {
		return nil, err
	}
	return collect[ItemReply](stream)
}
