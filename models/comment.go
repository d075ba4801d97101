package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a viewer's comment on a report. Comments are
// append-only; there is no edit or delete path.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ReportID  string    `json:"report_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"type:varchar(1000);not null" conform:"trim"`
	ViewerID  string    `json:"viewer_id"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// AddCommentRequest is the JSON body for posting a comment.
type AddCommentRequest struct {
	Content string `json:"content" binding:"required" conform:"trim"`
}
