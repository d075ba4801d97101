package db

import (
	"github.com/pkg/errors"
	"github.com/techwatch/communitywatch/models"
	"gorm.io/gorm"
)

// CommentRepository interface
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByReportID(reportID string) ([]models.Comment, error)
	GetAllComments() ([]models.Comment, error)
}

// commentRepo struct
type commentRepo struct {
	DB *gorm.DB
}

// NewCommentRepo creates a new instance of CommentRepository
func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (cr *commentRepo) CreateComment(comment *models.Comment) error {
	return cr.DB.Create(comment).Error
}

// GetCommentsByReportID returns a report's comments oldest first, which is
// the display order within a report.
func (cr *commentRepo) GetCommentsByReportID(reportID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := cr.DB.Where("report_id = ?", reportID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch comments")
	}
	return comments, nil
}

func (cr *commentRepo) GetAllComments() ([]models.Comment, error) {
	var comments []models.Comment
	if err := cr.DB.Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch comments")
	}
	return comments, nil
}
