package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techwatch/communitywatch/config"
	"github.com/techwatch/communitywatch/db"
	"github.com/techwatch/communitywatch/server/response"
	"github.com/techwatch/communitywatch/services"
)

type Server struct {
	Config            *config.Config
	ReportRepository  db.ReportRepository
	LikeRepository    db.LikeRepository
	CommentRepository db.CommentRepository
	ReportService     services.ReportService
	LikeService       services.LikeService
	CommentService    services.CommentService
	MediaService      services.MediaService
	DB                *db.GormDB
}

func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("Server started on :%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}

func (s *Server) handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, "ok", http.StatusOK, nil, nil)
	}
}
