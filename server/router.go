package server

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Viewer-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 32 << 20
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	limitMutations := s.limitMutations()

	apirouter := router.Group("/api/v1")
	apirouter.GET("/healthz", s.handleHealthCheck())
	apirouter.POST("/reports", limitMutations, s.handleCreateReport())
	apirouter.GET("/reports", s.ViewerID(), s.handleGetAllReports())
	apirouter.GET("/reports/:reportID/comments", s.handleGetReportComments())

	engaged := apirouter.Group("/")
	engaged.Use(s.RequireViewerID())
	engaged.PUT("/reports/:reportID/like", s.handleToggleLike())
	engaged.POST("/reports/:reportID/comments", limitMutations, s.handleAddComment())
	engaged.GET("/likes", s.handleGetUserLikes())
}
