package db

import (
	"github.com/pkg/errors"
	"github.com/techwatch/communitywatch/models"
	"gorm.io/gorm"
)

// LikeRepository interface
type LikeRepository interface {
	HasLiked(reportID, viewerID string) (bool, error)
	CreateLike(like *models.Like) error
	DeleteLike(reportID, viewerID string) error
	GetAllLikes() ([]models.Like, error)
	GetLikedReportIDs(viewerID string) ([]string, error)
}

// likeRepo struct
type likeRepo struct {
	DB *gorm.DB
}

// NewLikeRepo creates a new instance of LikeRepository
func NewLikeRepo(db *GormDB) LikeRepository {
	return &likeRepo{db.DB}
}

// HasLiked reports whether a like row exists for the pair. A missing row is
// not an error here; only a real lookup failure is.
func (lk *likeRepo) HasLiked(reportID, viewerID string) (bool, error) {
	var like models.Like
	err := lk.DB.Where("report_id = ? AND viewer_id = ?", reportID, viewerID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to look up like")
	}
	return true, nil
}

func (lk *likeRepo) CreateLike(like *models.Like) error {
	return lk.DB.Create(like).Error
}

// DeleteLike removes the like row for the pair. Deleting a row that is
// already gone is a no-op, which is what the toggle protocol wants.
func (lk *likeRepo) DeleteLike(reportID, viewerID string) error {
	return lk.DB.Where("report_id = ? AND viewer_id = ?", reportID, viewerID).Delete(&models.Like{}).Error
}

func (lk *likeRepo) GetAllLikes() ([]models.Like, error) {
	var likes []models.Like
	if err := lk.DB.Find(&likes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch likes")
	}
	return likes, nil
}

func (lk *likeRepo) GetLikedReportIDs(viewerID string) ([]string, error) {
	var reportIDs []string
	err := lk.DB.Model(&models.Like{}).Where("viewer_id = ?", viewerID).Pluck("report_id", &reportIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch liked report ids")
	}
	return reportIDs, nil
}
