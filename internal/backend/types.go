package backend

import "strings"

// Category は在庫アイテムのカテゴリを表す閉じた列挙型。
// inventoryサービスのCategory列挙と1対1で対応する。
type Category string

const (
	// CategoryUnknown は未分類のカテゴリ。在庫サービス側で妥当性検証の対象になる。
	CategoryUnknown Category = "CATEGORY_UNKNOWN"
	// CategoryFood は食料品。
	CategoryFood Category = "FOOD"
	// CategoryClothing は衣料品。
	CategoryClothing Category = "CLOTHING"
	// CategoryToys は玩具。
	CategoryToys Category = "TOYS"
	// CategorySchoolSupplies は学用品。
	CategorySchoolSupplies Category = "SCHOOL_SUPPLIES"
)

// NormalizeCategory はクライアントが指定したカテゴリ名を列挙型に正規化する。
// 大文字小文字は区別しない。空文字や未知の名前は拒否せず CategoryUnknown に
// 変換する。最終的な妥当性検証はinventoryサービスが行う。
func NormalizeCategory(name string) Category {
	switch c := Category(strings.ToUpper(name)); c {
	case CategoryFood, CategoryClothing, CategoryToys, CategorySchoolSupplies:
		return c
	default:
		return CategoryUnknown
	}
}

// LoginRequest は userサービスのLogin要求。
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUser はLogin応答に含まれるユーザー情報。
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// Role はuserサービスが解決したロール名。
	Role string `json:"role"`
}

// LoginReply は userサービスのLogin応答。
type LoginReply struct {
	User LoginUser `json:"user"`
}

// GetUserRequest は userサービスのGetUser要求。
type GetUserRequest struct {
	ID int64 `json:"id"`
}

// UserReply は userサービスの単一ユーザー応答。
type UserReply struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserRequest は userサービスのCreateUser要求。
type CreateUserRequest struct {
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

// UpdateUserRequest は userサービスのUpdateUser要求。
// 空文字列の項目は「変更なし」としてuserサービスに解釈される。
type UpdateUserRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsActive  bool   `json:"is_active"`
}

// DeleteUserRequest は userサービスのDeleteUser要求。
type DeleteUserRequest struct {
	ID int64 `json:"id"`
}

// DeleteUserReply は userサービスのDeleteUser応答。
type DeleteUserReply struct {
	Success bool `json:"success"`
}

// ListUsersRequest は userサービスのListUsers要求。
// ページ番号とページサイズはクライアントの指定値をそのまま転送する。
type ListUsersRequest struct {
	Page int32 `json:"page"`
	Size int32 `json:"size"`
}

// AddItemRequest は inventoryサービスのAddItem要求。
type AddItemRequest struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Quantity    int32    `json:"quantity"`
}

// ItemReply は inventoryサービスの単一アイテム応答。
type ItemReply struct {
	ID          int64    `json:"id"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Quantity    int32    `json:"quantity"`
	Deleted     bool     `json:"deleted"`
}

// UpdateItemRequest は inventoryサービスのUpdateItem要求。
// Quantityに負値を渡すと「数量は変更なし」として解釈される。
type UpdateItemRequest struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
}

// DeleteItemRequest は inventoryサービスのDeleteItem要求。
type DeleteItemRequest struct {
	ID int64 `json:"id"`
}

// DeleteItemReply は inventoryサービスのDeleteItem応答。
// 論理削除であり、削除済みアイテムへの再実行はSuccess=falseで報告される。
type DeleteItemReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AdjustQuantityRequest は inventoryサービスのAdjustQuantity要求。
type AdjustQuantityRequest struct {
	ID    int64 `json:"id"`
	Delta int32 `json:"delta"`
}

// ListItemsRequest は inventoryサービスのListItems要求。
type ListItemsRequest struct{}

// CreateEventRequest は eventサービスのCreateEvent要求。
// EventDatetime はUTCエポック秒。
type CreateEventRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EventDatetime int64  `json:"event_datetime"`
}

// UpdateEventRequest は eventサービスのUpdateEvent要求。
// EventDatetime が0の場合は「日時は変更なし」として解釈される。
type UpdateEventRequest struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EventDatetime int64  `json:"event_datetime"`
}

// EventReply は eventサービスの単一イベント応答。
type EventReply struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeleteEventRequest は eventサービスのDeleteEvent要求。
// RequestedBy には操作を行った認証済みユーザーのIDを記録する。
type DeleteEventRequest struct {
	ID          int64 `json:"id"`
	RequestedBy int64 `json:"requested_by"`
}

// DeleteEventReply は eventサービスのDeleteEvent応答。
type DeleteEventReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AssignMemberRequest は eventサービスのAssignMember要求。
// AssignedBy には操作を行った認証済みユーザーのIDを記録する。
type AssignMemberRequest struct {
	EventID    int64 `json:"event_id"`
	UserID     int64 `json:"user_id"`
	AssignedBy int64 `json:"assigned_by"`
}

// RemoveMemberRequest は eventサービスのRemoveMember要求。
// RemovedBy には操作を行った認証済みユーザーのIDを記録する。
type RemoveMemberRequest struct {
	EventID   int64 `json:"event_id"`
	UserID    int64 `json:"user_id"`
	RemovedBy int64 `json:"removed_by"`
}

// ListEventsRequest は eventサービスのListEvents要求。
type ListEventsRequest struct{}
