package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/server/response"
)

func (s *Server) handleToggleLike() gin.HandlerFunc {
	return func(c *gin.Context) {
		reportIDStr := c.Param("reportID")
		viewerID := viewerIDFromContext(c)

		liked, err := s.LikeService.ToggleLike(reportIDStr, viewerID)
		if err != nil {
			response.JSON(c, "", errs.StatusOf(err), nil, err)
			return
		}

		message := "like removed"
		if liked {
			message = "report liked successfully"
		}
		response.JSON(c, message, http.StatusOK, gin.H{"liked": liked}, nil)
	}
}

func (s *Server) handleGetUserLikes() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := viewerIDFromContext(c)
		likes := s.LikeService.GetUserLikes(viewerID)
		response.JSON(c, "likes fetched successfully", http.StatusOK, likes, nil)
	}
}
