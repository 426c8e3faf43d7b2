package handler

import (
	"errors"
	"net/http"

	"github.com/cwru-wtf/homebase/internal/service"
	"github.com/cwru-wtf/homebase/internal/validation"
	"github.com/cwru-wtf/homebase/pkg/logger"
	"github.com/cwru-wtf/homebase/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SubmissionHandler serves the public application intake endpoint.
type SubmissionHandler struct {
	submissions *service.SubmissionService
}

func NewSubmissionHandler(submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Create handles POST /submissions.
func (h *SubmissionHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.SubmissionCounter.Inc()

	var req validation.SubmissionRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse submission request", zap.Error(err))
		prometheus.RecordSubmissionError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	submission, err := h.submissions.Create(&req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			log.Info("Submission failed validation",
				zap.String("email", req.Email),
				zap.Int("violations", len(verr.Details)))
			prometheus.RecordSubmissionError("validation_failed")
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "Validation failed",
				"details": verr.Details,
			})
		case errors.Is(err, service.ErrDuplicateEmail):
			log.Info("Duplicate submission attempt", zap.String("email", req.Email))
			prometheus.RecordSubmissionError("duplicate_email")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already submitted"})
		default:
			log.Error("Failed to create submission", zap.Error(err))
			prometheus.RecordSubmissionError("db_error")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Application submitted successfully!",
		"id":      submission.ID,
	})
}
