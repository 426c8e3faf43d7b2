package service

import (
	"errors"
	"time"

	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/internal/validation"
	"github.com/cwru-wtf/homebase/prometheus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stats are the aggregate review counts over all submissions.
// total == approved + pending + rejected.
type Stats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}

// SubmissionService creates applications and computes aggregates.
type SubmissionService struct {
	db    *gorm.DB
	audit *AuditLogger
	log   *zap.Logger
}

// NewSubmissionService creates a submission service on the given database handle.
func NewSubmissionService(db *gorm.DB, audit *AuditLogger, log *zap.Logger) *SubmissionService {
	return &SubmissionService{db: db, audit: audit, log: log}
}

// Create validates the request, enforces email uniqueness and inserts a new
// pending application. Validation runs here even when the boundary already
// validated, so the service never trusts its caller's input.
func (s *SubmissionService) Create(req *validation.SubmissionRequest) (*model.Submission, error) {
	payload, verr := validation.ValidateSubmission(req)
	if verr != nil {
		return nil, verr
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	if err := s.db.Model(&model.Submission{}).Where("email = ?", payload.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	submission := model.Submission{
		Name:           payload.Name,
		Email:          payload.Email,
		Categories:     model.EncodeCategories(payload.Categories),
		OtherCategory:  payload.OtherCategory,
		WtfIdea:        payload.WtfIdea,
		CurrentProject: payload.CurrentProject,
		YoutubeLink:    payload.YoutubeLink,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := s.db.Create(&submission).Error; err != nil {
		// The unique index closes the pre-check race; surface a concurrent
		// duplicate the same way as one the pre-check caught.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.audit.Record(submission.ID, model.ActionSubmitted, "New submission from "+submission.Email)

	s.log.Info("Submission created",
		zap.Uint("id", submission.ID),
		zap.String("email", submission.Email))
	return &submission, nil
}

// Stats returns the aggregate counts by review status and refreshes the
// per-status gauges.
func (s *SubmissionService) Stats() (*Stats, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var stats Stats
	if err := s.db.Model(&model.Submission{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Submission{}).Where("is_approved = ?", true).Count(&stats.Approved).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Submission{}).Where("is_approved IS NULL").Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Submission{}).Where("is_approved = ?", false).Count(&stats.Rejected).Error; err != nil {
		return nil, err
	}

	prometheus.UpdateStatusCounts(stats.Approved, stats.Pending, stats.Rejected)
	return &stats, nil
}

// ListAll returns every submission, newest first. Callers are responsible
// for restricting access to reviewers.
func (s *SubmissionService) ListAll() ([]model.Submission, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var submissions []model.Submission
	if err := s.db.Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
