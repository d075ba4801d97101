package services

import (
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techwatch/communitywatch/config"
	"github.com/techwatch/communitywatch/db"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/models"
)

// ReportService interface
type ReportService interface {
	CreateReport(req *models.CreateReportRequest, image *multipart.FileHeader) (*models.Report, error)
	GetReports(viewerID string) []models.ReportView
}

// reportService struct
type reportService struct {
	Config       *config.Config
	reportRepo   db.ReportRepository
	likeRepo     db.LikeRepository
	commentRepo  db.CommentRepository
	mediaService MediaService
}

// NewReportService creates a new instance of ReportService
func NewReportService(reportRepo db.ReportRepository, likeRepo db.LikeRepository, commentRepo db.CommentRepository, mediaService MediaService, conf *config.Config) ReportService {
	return &reportService{
		Config:       conf,
		reportRepo:   reportRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		mediaService: mediaService,
	}
}

func (s *reportService) CreateReport(req *models.CreateReportRequest, image *multipart.FileHeader) (*models.Report, error) {
	if !models.IsValidCategory(req.Category) {
		return nil, errs.New("invalid category: "+req.Category, http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, errs.New("description is required", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, errs.New("location is required", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, errs.New("date is required", http.StatusBadRequest)
	}

	// Upload failure must not sink the report; it only costs the image.
	var imageURL string
	if image != nil {
		url, err := s.mediaService.UploadImage(image, uuid.New().String())
		if err != nil {
			log.Printf("evidence upload failed, creating report without image: %v", err)
		} else {
			imageURL = url
		}
	}

	report := &models.Report{
		ID:          uuid.New(),
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Date:        req.Date,
		Status:      models.StatusUnderReview,
		ImageURL:    imageURL,
		UserID:      nil, // reports are anonymous no matter who submits them
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := s.reportRepo.SaveReport(report)
	if err != nil {
		log.Printf("failed to save report: %v", err)
		return nil, errs.New("report creation failed", http.StatusInternalServerError)
	}
	return saved, nil
}

// GetReports assembles the feed read model for a viewer. Counts and per-viewer
// like state are recomputed from the raw like and comment rows on every call.
// Any store failure collapses to an empty feed: the read contract favors
// showing nothing over showing a broken partial feed, so callers cannot tell
// an empty report set from a failed fetch here.
func (s *reportService) GetReports(viewerID string) []models.ReportView {
	views := make([]models.ReportView, 0)

	reports, err := s.reportRepo.GetAllReports()
	if err != nil {
		log.Printf("failed to fetch reports: %v", err)
		return views
	}
	if len(reports) == 0 {
		return views
	}

	likes, err := s.likeRepo.GetAllLikes()
	if err != nil {
		log.Printf("failed to fetch likes: %v", err)
		return views
	}
	comments, err := s.commentRepo.GetAllComments()
	if err != nil {
		log.Printf("failed to fetch comments: %v", err)
		return views
	}

	likeCounts := make(map[string]int)
	viewerLiked := make(map[string]bool)
	for _, l := range likes {
		likeCounts[l.ReportID]++
		if viewerID != "" && l.ViewerID == viewerID {
			viewerLiked[l.ReportID] = true
		}
	}

	// Comments arrive oldest first from the store, so appending preserves
	// display order within each report.
	commentBodies := make(map[string][]string)
	for _, cm := range comments {
		commentBodies[cm.ReportID] = append(commentBodies[cm.ReportID], cm.Content)
	}

	for _, report := range reports {
		id := report.ID.String()
		bodies := commentBodies[id]
		if bodies == nil {
			bodies = []string{}
		}
		views = append(views, models.ReportView{
			Report:         report,
			Upvotes:        likeCounts[id],
			Comments:       len(bodies),
			HasViewerLiked: viewerLiked[id],
			CommentsList:   bodies,
		})
	}

	return views
}
