// Package mockserver is an in-memory practice backend implementing
// the same contract as the production API, so the client can be run
// and tested without external services. State lives in process and is
// gone on restart.
package mockserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Options struct {
	JWTSecret       string
	TokenTTL        time.Duration
	NumberCallDelay time.Duration
	Env             string
	Log             *zap.SugaredLogger
}

type Server struct {
	log       *zap.SugaredLogger
	secret    []byte
	tokenTTL  time.Duration
	callDelay time.Duration

	store *store

	hubsMu sync.Mutex
	hubs   map[int64]*roomHub

	roundsMu sync.Mutex
	rounds   map[int64]*round

	upgrader websocket.Upgrader
	engine   *gin.Engine
}

func New(opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 7 * 24 * time.Hour
	}
	if opts.NumberCallDelay <= 0 {
		opts.NumberCallDelay = 3 * time.Second
	}
	if opts.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		log:       opts.Log,
		secret:    []byte(opts.JWTSecret),
		tokenTTL:  opts.TokenTTL,
		callDelay: opts.NumberCallDelay,
		store:     newStore(),
		hubs:      make(map[int64]*roomHub),
		rounds:    make(map[int64]*round),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.engine = s.buildRouter()
	return s
}

// Router exposes the full HTTP surface, websocket endpoint included.
func (s *Server) Router() http.Handler {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	api.POST("/auth/login", s.handleLogin)

	protected := api.Group("")
	protected.Use(s.authMiddleware())
	{
		games := protected.Group("/games")
		{
			games.GET("/rooms", s.handleListRooms)
			games.GET("/my-cards", s.handleMyCards)
			games.POST("/generate-cards", s.handleGenerateCards)
			games.POST("/join-game", s.handleJoinGame)
			games.POST("/start-game/:room_id", s.handleStartGame)
			games.POST("/mark-number", s.handleMarkNumber)
			games.POST("/check-win", s.handleCheckWin)
		}

		wallet := protected.Group("/wallet")
		{
			wallet.GET("/balance", s.handleBalance)
			wallet.GET("/transactions", s.handleTransactions)
			wallet.POST("/deposit", s.handleDeposit)
			wallet.POST("/withdraw", s.handleWithdraw)
			wallet.POST("/transfer", s.handleTransfer)
		}

		profile := protected.Group("/profile")
		{
			profile.GET("/", s.handleProfile)
			profile.PUT("/language", s.handleUpdateLanguage)
		}
	}

	ws := router.Group("/ws")
	ws.Use(s.authMiddleware())
	ws.GET("/game/:room_id/:user_id", s.handleWebSocket)

	return router
}
