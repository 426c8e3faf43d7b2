package service

import (
	"time"

	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/prometheus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuditLogger appends immutable action records for state-changing events.
// Writes are best-effort: a failed append is logged and discarded so it can
// never abort the operation being audited.
type AuditLogger struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewAuditLogger creates an audit logger on the given database handle.
func NewAuditLogger(db *gorm.DB, log *zap.Logger) *AuditLogger {
	return &AuditLogger{db: db, log: log}
}

// Record appends an action log entry for a submission. Errors never propagate.
func (l *AuditLogger) Record(submissionID uint, action, details string) {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	entry := model.ActionLog{
		SubmissionID: submissionID,
		Action:       action,
	}
	if details != "" {
		entry.Details = &details
	}

	if err := l.db.Create(&entry).Error; err != nil {
		l.log.Error("Failed to record action log entry",
			zap.Uint("submission_id", submissionID),
			zap.String("action", action),
			zap.Error(err))
	}
}
