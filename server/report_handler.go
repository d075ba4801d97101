package server

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leebenson/conform"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/models"
	"github.com/techwatch/communitywatch/server/response"
)

func (s *Server) handleCreateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateReportRequest
		if err := c.ShouldBind(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New(err.Error(), http.StatusBadRequest))
			return
		}
		if err := conform.Strings(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New(err.Error(), http.StatusBadRequest))
			return
		}

		// The evidence image is optional; a missing file is not an error.
		var image *multipart.FileHeader
		if fileHeader, err := c.FormFile("image"); err == nil {
			image = fileHeader
		}

		report, err := s.ReportService.CreateReport(&req, image)
		if err != nil {
			response.JSON(c, "", errs.StatusOf(err), nil, err)
			return
		}

		response.JSON(c, "report created successfully", http.StatusCreated, report, nil)
	}
}

func (s *Server) handleGetAllReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := viewerIDFromContext(c)
		reports := s.ReportService.GetReports(viewerID)

		// Always 200 with a list. An empty list can mean no reports or a
		// failed fetch; callers are not meant to tell them apart here.
		response.JSON(c, "reports fetched successfully", http.StatusOK, gin.H{"reports": reports}, nil)
	}
}
