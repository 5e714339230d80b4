package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sreeja24H51A66DH/lendahand1/internal/auth"
	"github.com/sreeja24H51A66DH/lendahand1/internal/config"
	"github.com/sreeja24H51A66DH/lendahand1/internal/handler"
	appmw "github.com/sreeja24H51A66DH/lendahand1/internal/middleware"
	"github.com/sreeja24H51A66DH/lendahand1/internal/repository"
	"github.com/sreeja24H51A66DH/lendahand1/internal/service"
	"github.com/sreeja24H51A66DH/lendahand1/internal/storage"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(cfg *config.Config, db *gorm.DB, uploader storage.Uploader) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	tokens := auth.NewService(cfg.JWTSecret)
	authMw := appmw.NewAuthMiddleware(tokens)

	userRepo := repository.NewUserRepository(db)
	userSvc := service.NewUserService(userRepo, tokens, cfg.EmailDomain)
	authHandler := handler.NewAuthHandler(userSvc)

	itemRepo := repository.NewItemRepository(db)
	itemSvc := service.NewItemService(itemRepo, userRepo, uploader)
	itemHandler := handler.NewItemHandler(itemSvc)

	convRepo := repository.NewConversationRepository(db)
	convSvc := service.NewConversationService(convRepo, itemRepo, userRepo)
	convHandler := handler.NewConversationHandler(convSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authMw.RequireAuth)

	api.POST("/items", itemHandler.Create, authMw.RequireAuth)
	api.GET("/items", itemHandler.List)
	api.GET("/items/:id", itemHandler.Get)
	api.PATCH("/items/:id/status", itemHandler.UpdateStatus, authMw.RequireAuth)
	api.GET("/items/user/:userId", itemHandler.ListByUser)

	api.POST("/messages", convHandler.SendMessage, authMw.RequireAuth)
	api.GET("/messages/:itemId/:otherUserId", convHandler.ListMessages, authMw.RequireAuth)
	api.GET("/conversations", convHandler.ListConversations, authMw.RequireAuth)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
