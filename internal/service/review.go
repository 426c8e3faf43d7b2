package service

import (
	"errors"
	"time"

	"github.com/cwru-wtf/homebase/internal/email"
	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/prometheus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewService transitions submissions between review states. Authorization
// is the caller's responsibility; every entry point sits behind the admin
// route guard.
type ReviewService struct {
	db    *gorm.DB
	audit *AuditLogger
	log   *zap.Logger
}

// NewReviewService creates a review service on the given database handle.
func NewReviewService(db *gorm.DB, audit *AuditLogger, log *zap.Logger) *ReviewService {
	return &ReviewService{db: db, audit: audit, log: log}
}

// SetStatus marks a submission approved or rejected, records the decision in
// the audit trail and queues the applicant notification. Audit or
// notification failures never roll back the status change.
func (r *ReviewService) SetStatus(id uint, approved bool) (*model.Submission, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Re-reviewing an already-decided submission is allowed and repeats the
	// audit and notification steps. A one-shot workflow would reject
	// submission.IsApproved != nil here with a conflict error.

	now := time.Now()
	defer prometheus.TrackDBOperation("update")(time.Now())
	result := r.db.Model(&submission).Updates(map[string]interface{}{
		"is_approved": approved,
		"updated_at":  now,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	submission.IsApproved = &approved
	submission.UpdatedAt = now

	decision := model.ActionRejected
	if approved {
		decision = model.ActionApproved
	}
	prometheus.RecordReview(decision)
	r.audit.Record(submission.ID, decision, "Submission "+decision+" via admin panel")

	// Delivery is not wired in; render the template, log what would be sent
	// and record the message as queued.
	message := email.Template(approved, submission.Name)
	r.log.Info("Would send email",
		zap.Uint("submission_id", submission.ID),
		zap.String("to", submission.Email),
		zap.String("subject", message.Subject))
	r.audit.Record(submission.ID, model.ActionEmailQueued, decision+" email queued for "+submission.Email)

	r.log.Info("Submission reviewed",
		zap.Uint("id", submission.ID),
		zap.String("decision", decision))
	return &submission, nil
}
