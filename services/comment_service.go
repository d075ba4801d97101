package services

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techwatch/communitywatch/config"
	"github.com/techwatch/communitywatch/db"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/models"
)

// CommentService interface
type CommentService interface {
	AddComment(reportID, content, viewerID string) (*models.Comment, error)
	GetReportComments(reportID string) []models.Comment
}

// commentService struct
type commentService struct {
	Config      *config.Config
	commentRepo db.CommentRepository
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo db.CommentRepository, conf *config.Config) CommentService {
	return &commentService{
		Config:      conf,
		commentRepo: commentRepo,
	}
}

func (cs *commentService) AddComment(reportID, content, viewerID string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errs.New("comment content is required", http.StatusBadRequest)
	}
	if reportID == "" || viewerID == "" {
		return nil, errs.New("reportID and viewerID are required", http.StatusBadRequest)
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		ReportID:  reportID,
		Content:   content,
		ViewerID:  viewerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := cs.commentRepo.CreateComment(comment); err != nil {
		log.Printf("failed to save comment: %v", err)
		return nil, errs.New("failed to add comment", http.StatusInternalServerError)
	}
	return comment, nil
}

// GetReportComments returns a report's comments oldest first, empty on store
// failure.
func (cs *commentService) GetReportComments(reportID string) []models.Comment {
	comments, err := cs.commentRepo.GetCommentsByReportID(reportID)
	if err != nil {
		log.Printf("failed to fetch comments for report %s: %v", reportID, err)
		return []models.Comment{}
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments
}
