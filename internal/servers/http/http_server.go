package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"letterChat/configs"
	_ "letterChat/docs"
	"letterChat/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx     context.Context
	config  *configs.Config
	router  *gin.Engine
	handler *handlers.RestHandler
}

func NewHttpServer(ctx context.Context, config *configs.Config, handler *handlers.RestHandler) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:     ctx,
			config:  config,
			handler: handler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/login", hs.handler.Login)
	hs.router.POST("/register", hs.handler.Register)

	authenticated := hs.router.Group("/", hs.handler.MustAuthenticateMiddleware())
	authenticated.GET("/chats", hs.handler.GetConversations)
	authenticated.POST("/chats", hs.handler.CreateConversation)
	authenticated.GET("/chats/:chatId/messages", hs.handler.GetConversationMessages)
	authenticated.POST("/chats/:chatId/messages", hs.handler.SendMessage)
	authenticated.POST("/chats/:chatId/seed", hs.handler.SeedConversation)
	authenticated.POST("/chats/report", hs.handler.ReportMessage)

	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) startServer() *http.Server {
	addr := hs.config.Viper.GetString("server.address")
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Println("HTTP server started on", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
