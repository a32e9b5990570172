package backend

import (
	"context"

	"google.golang.org/grpc"
)

// UserClient は userサービスへの呼び出しインタフェース。
type UserClient interface {
	// Login は資格情報を検証し、解決済みロールを含むユーザー情報を返す。
	Login(ctx context.Context, req *LoginRequest) (*LoginReply, error)
	// GetUser は単一ユーザーを取得する。
	GetUser(ctx context.Context, req *GetUserRequest) (*UserReply, error)
	// CreateUser は新規ユーザーを作成する。
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserReply, error)
	// UpdateUser は既存ユーザーを更新する。
	UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UserReply, error)
	// DeleteUser はユーザーを削除する。
	DeleteUser(ctx context.Context, req *DeleteUserRequest) (*DeleteUserReply, error)
	// ListUsers はユーザー一覧のサーバーストリームを受信順のまま取り込んで返す。
	ListUsers(ctx context.Context, req *ListUsersRequest) ([]UserReply, error)
}

// userClient は grpc.ClientConnInterface 上のUserClient実装。
type userClient struct {
	cc grpc.ClientConnInterface
}

// NewUserClient は userサービスのgRPCクライアントを生成する。
func NewUserClient(cc grpc.ClientConnInterface) UserClient {
	return &userClient{cc: cc}
}

// listUsersDesc は ListUsers サーバーストリームの定義。
var listUsersDesc = grpc.StreamDesc{
	StreamName:    "ListUsers",
	ServerStreams: true,
}

func (c *userClient) Login(ctx context.Context, req *LoginRequest) (*LoginReply, error) {
	out := new(LoginReply)
	if err := c.cc.Invoke(ctx, "/user.UserService/Login", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userClient) GetUser(ctx context.Context, req *GetUserRequest) (*UserReply, error) {
	out := new(UserReply)
	if err := c.cc.Invoke(ctx, "/user.UserService/GetUser", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userClient) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserReply, error) {
	out := new(UserReply)
	if err := c.cc.Invoke(ctx, "/user.UserService/CreateUser", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userClient) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UserReply, error) {
	out := new(UserReply)
	if err := c.cc.Invoke(ctx, "/user.UserService/UpdateUser", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userClient) DeleteUser(ctx context.Context, req *DeleteUserRequest) (*DeleteUserReply, error) {
	out := new(DeleteUserReply)
	if err := c.cc.Invoke(ctx, "/user.UserService/DeleteUser", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userClient) ListUsers(ctx context.Context, req *ListUsersRequest) ([]UserReply, error) {
	stream, err := c.cc.NewStream(ctx, &listUsersDesc, "/user.UserService/ListUsers")
	if err != nil {
		return nil, err
	}
	if err := openServerStream(stream, req); err != nil {
		return nil, err
	}
	return collect[UserReply](stream)
}
