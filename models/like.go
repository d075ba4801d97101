package models

import "time"

// Like marks that a viewer has upvoted a report. Existence of the row is the
// whole signal: toggling inserts or deletes, never updates. The composite
// primary key keeps at most one row per (report, viewer) pair.
type Like struct {
	ReportID  string    `json:"report_id" gorm:"type:uuid;primaryKey"`
	ViewerID  string    `json:"viewer_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
