package services

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/techwatch/communitywatch/config"
	"github.com/techwatch/communitywatch/db"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/models"
	"gorm.io/gorm"
)

// LikeService interface
type LikeService interface {
	ToggleLike(reportID, viewerID string) (bool, error)
	GetUserLikes(viewerID string) []string
}

// likeService struct
type likeService struct {
	Config   *config.Config
	likeRepo db.LikeRepository
	pairs    *pairLocks
}

// pairLocks serializes toggles per (report, viewer) pair so the existence
// check and the write cannot interleave for the same pair on this node.
// Entries are never evicted; the table is bounded by distinct pairs seen.
type pairLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *pairLocks) lock(key string) *sync.Mutex {
	p.mu.Lock()
	l, ok := p.locks[key]
	if !ok {
		l = &sync.Mutex{}
		p.locks[key] = l
	}
	p.mu.Unlock()
	l.Lock()
	return l
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(likeRepo db.LikeRepository, conf *config.Config) LikeService {
	return &likeService{
		Config:   conf,
		likeRepo: likeRepo,
		pairs:    &pairLocks{locks: make(map[string]*sync.Mutex)},
	}
}

// ToggleLike flips the like state for the pair and reports the state after
// the call: a pair with an existing row loses it, a pair without one gains
// it. This call never returns counts; the caller recomputes them on its
// next read.
func (lk *likeService) ToggleLike(reportID, viewerID string) (bool, error) {
	if reportID == "" || viewerID == "" {
		return false, errs.New("reportID and viewerID are required", http.StatusBadRequest)
	}

	l := lk.pairs.lock(reportID + "|" + viewerID)
	defer l.Unlock()

	exists, err := lk.likeRepo.HasLiked(reportID, viewerID)
	if err != nil {
		log.Printf("like lookup failed: %v", err)
		return false, errs.New("failed to toggle like", http.StatusInternalServerError)
	}

	if exists {
		if err := lk.likeRepo.DeleteLike(reportID, viewerID); err != nil {
			log.Printf("like delete failed: %v", err)
			return false, errs.New("failed to toggle like", http.StatusInternalServerError)
		}
		return false, nil
	}

	like := &models.Like{
		ReportID:  reportID,
		ViewerID:  viewerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := lk.likeRepo.CreateLike(like); err != nil {
		// A toggle from another node can still slip in between the check
		// and the insert; the composite key rejects the duplicate and the
		// pair is already in the liked state.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		log.Printf("like insert failed: %v", err)
		return false, errs.New("failed to toggle like", http.StatusInternalServerError)
	}
	return true, nil
}

// GetUserLikes returns the report ids the viewer has liked, empty on store
// failure, matching the feed read contract.
func (lk *likeService) GetUserLikes(viewerID string) []string {
	ids, err := lk.likeRepo.GetLikedReportIDs(viewerID)
	if err != nil {
		log.Printf("failed to fetch likes for viewer: %v", err)
		return []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}
