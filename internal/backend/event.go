package backend

import (
	"context"

	"google.golang.org/grpc"
)

// EventClient は eventサービスへの呼び出しインタフェース。
type EventClient interface {
	// CreateEvent は新規イベントを作成する。
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*EventReply, error)
	// UpdateEvent は既存イベントを更新する。
	UpdateEvent(ctx context.Context, req *UpdateEventRequest) (*EventReply, error)
	// DeleteEvent はイベントを削除する。
	DeleteEvent(ctx context.Context, req *DeleteEventRequest) (*DeleteEventReply, error)
	// AssignMember はイベントにメンバーを割り当てる。
	AssignMember(ctx context.Context, req *AssignMemberRequest) (*EventReply, error)
	// RemoveMember はイベントからメンバーを外す。
	RemoveMember(ctx context.Context, req *RemoveMemberRequest) (*EventReply, error)
	// ListEvents はイベント一覧のサーバーストリームを受信順のまま取り込んで返す。
	ListEvents(ctx context.Context, req *ListEventsRequest) ([]EventReply, error)
}

// eventClient は grpc.ClientConnInterface 上のEventClient実装。
type eventClient struct {
	cc grpc.ClientConnInterface
}

// NewEventClient は eventサービスのgRPCクライアントを生成する。
func NewEventClient(cc grpc.ClientConnInterface) EventClient {
	return &eventClient{cc: cc}
}

// listEventsDesc は ListEvents サーバーストリームの定義。
var listEventsDesc = grpc.StreamDesc{
	StreamName:    "ListEvents",
	ServerStreams: true,
}

func (c *eventClient) CreateEvent(ctx context.Context, req *CreateEventRequest) (*EventReply, error) {
	out := new(EventReply)
	if err := c.cc.Invoke(ctx, "/event.EventService/CreateEvent", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventClient) UpdateEvent(ctx context.Context, req *UpdateEventRequest) (*EventReply, error) {
	out := new(EventReply)
	if err := c.cc.Invoke(ctx, "/event.EventService/UpdateEvent", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventClient) DeleteEvent(ctx context.Context, req *DeleteEventRequest) (*DeleteEventReply, error) {
	out := new(DeleteEventReply)
	if err := c.cc.Invoke(ctx, "/event.EventService/DeleteEvent", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventClient) AssignMember(ctx context.Context, req *AssignMemberRequest) (*EventReply, error) {
	out := new(EventReply)
	if err := c.cc.Invoke(ctx, "/event.EventService/AssignMember", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventClient) RemoveMember(ctx context.Context, req *RemoveMemberRequest) (*EventReply, error) {
	out := new(EventReply)
	if err := c.cc.Invoke(ctx, "/event.EventService/RemoveMember", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventClient) ListEvents(ctx context.Context, req *ListEventsRequest) ([]EventReply, error) {
	stream, err := c.cc.NewStream(ctx, &listEventsDesc, "/event.EventService/ListEvents")
	if err != nil {
		return nil, err
	}
	if err := openServerStream(stream, req); err != nil {
		return nil, err
	}
	return collect[EventReply](stream)
}
