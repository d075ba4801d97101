package services

import (
	"mime/multipart"
	"sort"
	"sync"

	"github.com/techwatch/communitywatch/models"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the real repos' contracts:
// GetAllReports is newest first, comment fetches are oldest first, and a
// duplicate like insert fails with gorm.ErrDuplicatedKey.

type fakeReportRepo struct {
	mu      sync.Mutex
	reports []models.Report
	saveErr error
	listErr error
}

func (f *fakeReportRepo) SaveReport(report *models.Report) (*models.Report, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, *report)
	return report, nil
}

func (f *fakeReportRepo) GetAllReports() ([]models.Report, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Report, len(f.reports))
	copy(out, f.reports)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeReportRepo) GetReportByID(reportID string) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reports {
		if f.reports[i].ID.String() == reportID {
			r := f.reports[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeLikeRepo struct {
	mu            sync.Mutex
	likes         map[string]models.Like
	lookupErr     error
	listErr       error
	createErr     error
	deleteErr     error
	forceNotLiked bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]models.Like)}
}

func (f *fakeLikeRepo) HasLiked(reportID, viewerID string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	if f.forceNotLiked {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.likes[reportID+"|"+viewerID]
	return ok, nil
}

func (f *fakeLikeRepo) CreateLike(like *models.Like) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := like.ReportID + "|" + like.ViewerID
	if _, ok := f.likes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.likes[key] = *like
	return nil
}

func (f *fakeLikeRepo) DeleteLike(reportID, viewerID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes, reportID+"|"+viewerID)
	return nil
}

func (f *fakeLikeRepo) GetAllLikes() ([]models.Like, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Like, 0, len(f.likes))
	for _, l := range f.likes {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLikeRepo) GetLikedReportIDs(viewerID string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0)
	for _, l := range f.likes {
		if l.ViewerID == viewerID {
			ids = append(ids, l.ReportID)
		}
	}
	return ids, nil
}

type fakeCommentRepo struct {
	mu        sync.Mutex
	comments  []models.Comment
	createErr error
	listErr   error
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentsByReportID(reportID string) ([]models.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Comment, 0)
	for _, cm := range f.comments {
		if cm.ReportID == reportID {
			out = append(out, cm)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) GetAllComments() ([]models.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Comment, len(f.comments))
	copy(out, f.comments)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeMediaService struct {
	url   string
	err   error
	calls int
}

func (f *fakeMediaService) UploadImage(fileHeader *multipart.FileHeader, token string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
