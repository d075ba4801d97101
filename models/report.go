package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusUnderReview is the lifecycle state every report starts in. Only the
// moderation side ever moves a report out of it.
const StatusUnderReview = "Under Review"

// ReportCategories is the fixed set of categories a report can be filed
// under. Kept in sync with the report form on the client.
var ReportCategories = []string{"Theft", "Harassment", "Vandalism", "Assault", "Other"}

func IsValidCategory(category string) bool {
	for _, c := range ReportCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Report is one submitted incident record. Reports are structurally
// anonymous: UserID exists in the schema but the create path never fills it.
// Likes and comments never touch the report row itself.
type Report struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Category    string    `json:"category" gorm:"type:varchar(50);not null"`
	Description string    `json:"description" gorm:"type:varchar(1000);not null" conform:"trim"`
	Location    string    `json:"location" gorm:"not null" conform:"trim"`
	Date        string    `json:"date" gorm:"not null"`
	Status      string    `json:"status" gorm:"default:'Under Review'"`
	ImageURL    string    `json:"image_url,omitempty"`
	UserID      *string   `json:"user_id" gorm:"default:null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// ReportView is the read model the feed renders: the report plus engagement
// counts recomputed from the likes and comments tables on every read. The
// counts here are authoritative; nothing on the report row is trusted for
// display.
type ReportView struct {
	Report
	Upvotes        int      `json:"upvotes"`
	Comments       int      `json:"comments"`
	HasViewerLiked bool     `json:"hasViewerLiked"`
	CommentsList   []string `json:"commentsList"`
}

// CreateReportRequest is the multipart form body for submitting a report.
type CreateReportRequest struct {
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required" conform:"trim"`
	Location    string `form:"location" binding:"required" conform:"trim"`
	Date        string `form:"date" binding:"required"`
}
