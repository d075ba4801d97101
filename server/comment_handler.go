package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leebenson/conform"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/models"
	"github.com/techwatch/communitywatch/server/response"
)

func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New(err.Error(), http.StatusBadRequest))
			return
		}
		if err := conform.Strings(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New(err.Error(), http.StatusBadRequest))
			return
		}

		reportID := c.Param("reportID")
		viewerID := viewerIDFromContext(c)

		comment, err := s.CommentService.AddComment(reportID, req.Content, viewerID)
		if err != nil {
			response.JSON(c, "", errs.StatusOf(err), nil, err)
			return
		}

		response.JSON(c, "comment added successfully", http.StatusCreated, comment, nil)
	}
}

func (s *Server) handleGetReportComments() gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID := c.Param("reportID")
		comments := s.CommentService.GetReportComments(reportID)
		response.JSON(c, "comments fetched successfully", http.StatusOK, comments, nil)
	}
}
