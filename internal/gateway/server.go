package gateway

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/empuje-comunitario/gateway/internal/backend"
	"github.com/empuje-comunitario/gateway/pkg/grpcclient"
	"github.com/empuje-comunitario/gateway/pkg/middleware"
	"github.com/empuje-comunitario/gateway/pkg/role"
)

// Server はゲートウェイサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// jwtSecret はJWT署名用の秘密鍵。プロセス起動時に一度だけ読み込む。
	jwtSecret string
	// users は userサービスのクライアント。
	users backend.UserClient
	// inventory は inventoryサービスのクライアント。
	inventory backend.InventoryClient
	// events は eventサービスのクライアント。
	events backend.EventClient
}

// serviceAddrConfig は各バックエンドサービスのgRPCアドレス設定。
type serviceAddrConfig struct {
	User      string
	Inventory string
	Event     string
}

// NewServer は新しいゲートウェイサーバーを生成する。
// 各バックエンドへのgRPCチャネルはここで一度だけ生成し、全リクエストで再利用する。
func NewServer(port string) (*Server, error) {
	addrs := serviceAddrConfig{
		User:      getEnvOr("USER_SERVICE_URL", "localhost:50051"),
		Inventory: getEnvOr("INVENTORY_SERVICE_URL", "localhost:50052"),
		Event:     getEnvOr("EVENT_SERVICE_URL", "localhost:50053"),
	}

	userConn, err := grpcclient.Dial(addrs.User)
	if err != nil {
		return nil, fmt.Errorf("userサービスへのチャネル生成に失敗: %w", err)
	}
	invConn, err := grpcclient.Dial(addrs.Inventory)
	if err != nil {
		return nil, fmt.Errorf("inventoryサービスへのチャネル生成に失敗: %w", err)
	}
	evtConn, err := grpcclient.Dial(addrs.Event)
	if err != nil {
		return nil, fmt.Errorf("eventサービスへのチャネル生成に失敗: %w", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your_jwt_secret_key_here"
	}

	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:3000")

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS([]string{frontendURL}))

	s := &Server{
		router:    router,
		port:      port,
		jwtSecret: jwtSecret,
		users:     backend.NewUserClient(userConn),
		inventory: backend.NewInventoryClient(invConn),
		events:    backend.NewEventClient(evtConn),
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// ルートごとの認証・ロール要件はグループのミドルウェアとして宣言し、
// ハンドラ本体には要求の組み立てと応答の変換だけを残す。
func (s *Server) setupRoutes() {
	// 認証不要のエンドポイント
	s.router.GET("/", s.handleRoot())
	s.router.GET("/health", s.handleHealth())
	s.router.POST("/auth/login", s.handleLogin())

	authed := s.router.Group("/")
	authed.Use(middleware.JWTAuth(s.jwtSecret))

	// ユーザー管理（PRESIDENTEのみ）
	users := authed.Group("/users")
	users.Use(middleware.RequireRole(role.RolePresidente))
	{
		users.GET("", s.handleListUsers())
		users.POST("", s.handleCreateUser())
		users.GET("/:id", s.handleGetUser())
		users.PUT("/:id", s.handleUpdateUser())
		users.DELETE("/:id", s.handleDeleteUser())
	}

	// 在庫管理（PRESIDENTEまたはVOCAL）
	inventory := authed.Group("/inventory")
	inventory.Use(middleware.RequireRole(role.RolePresidente, role.RoleVocal))
	{
		inventory.GET("", s.handleListItems())
		inventory.POST("", s.handleAddItem())
		inventory.PUT("/:id", s.handleUpdateItem())
		inventory.DELETE("/:id", s.handleDeleteItem())
		inventory.POST("/:id/adjust", s.handleAdjustQuantity())
	}

	// イベント参照と自己参加（認証済みであれば全ロール）
	authed.GET("/events", s.handleListEvents())
	authed.POST("/events/:id/participate", s.handleParticipate())
	authed.POST("/events/:id/leave", s.handleLeave())

	// イベント運営（PRESIDENTEまたはCOORDINADOR）
	eventAdmin := authed.Group("/events")
	eventAdmin.Use(middleware.RequireRole(role.RolePresidente, role.RoleCoordinador))
	{
		eventAdmin.POST("", s.handleCreateEvent())
		eventAdmin.PUT("/:id", s.handleUpdateEvent())
		eventAdmin.DELETE("/:id", s.handleDeleteEvent())
		eventAdmin.POST("/:id/assign", s.handleAssignMember())
		eventAdmin.POST("/:id/remove", s.handleRemoveMember())
	}
}

// handleRoot はサービス情報を返すハンドラを返す。
func (s *Server) handleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gateway"})
	}
}

// handleHealth はヘルスチェックハンドラを返す。
// バックエンドの死活は確認せず、ゲートウェイ自身が応答可能なら常にhealthyを返す。
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// pathID はURLパスパラメータ:idを数値IDとして取り出す。
// 数値でない場合は400を書き込みfalseを返す。バックエンド呼び出しは行わない。
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id in path"})
		return 0, false
	}
	return id, true
}

// queryIntOr はクエリパラメータを整数として取得する。
// 未指定または不正値の場合はデフォルト値を返す。
func queryIntOr(c *gin.Context, key string, defaultValue int) int {
	v := c.Query(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
