package db

import (
	"github.com/pkg/errors"
	"github.com/techwatch/communitywatch/models"
	"gorm.io/gorm"
)

// ReportRepository interface
type ReportRepository interface {
	SaveReport(report *models.Report) (*models.Report, error)
	GetAllReports() ([]models.Report, error)
	GetReportByID(reportID string) (*models.Report, error)
}

// reportRepo struct
type reportRepo struct {
	DB *gorm.DB
}

// NewReportRepo creates a new instance of ReportRepository
func NewReportRepo(db *GormDB) ReportRepository {
	return &reportRepo{db.DB}
}

func (r *reportRepo) SaveReport(report *models.Report) (*models.Report, error) {
	if err := r.DB.Create(report).Error; err != nil {
		return nil, errors.Wrap(err, "failed to save report")
	}
	return report, nil
}

// GetAllReports returns every report, newest first. Newest-first ordering is
// part of the read contract, not a presentation choice.
func (r *reportRepo) GetAllReports() ([]models.Report, error) {
	var reports []models.Report
	if err := r.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch reports")
	}
	return reports, nil
}

func (r *reportRepo) GetReportByID(reportID string) (*models.Report, error) {
	var report models.Report
	if err := r.DB.Where("id = ?", reportID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
