package model

import "time"

// Action tags recorded in the audit trail.
const (
	ActionSubmitted   = "submitted"
	ActionApproved    = "approved"
	ActionRejected    = "rejected"
	ActionEmailQueued = "email_queued"
)

// ActionLog is an append-only audit record of a state-changing action.
// Rows are never updated or deleted; SubmissionID is a weak reference
// kept for traceability only.
type ActionLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SubmissionID uint      `json:"submissionId" gorm:"column:submission_id;index"`
	Action       string    `json:"action" gorm:"type:text;not null"`
	Details      *string   `json:"details" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
}
