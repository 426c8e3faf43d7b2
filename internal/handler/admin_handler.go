package handler

import (
	"errors"
	"net/http"

	"github.com/cwru-wtf/homebase/internal/service"
	"github.com/cwru-wtf/homebase/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminHandler serves the review dashboard endpoints. Routes are guarded by
// the auth and role middleware before any handler here runs.
type AdminHandler struct {
	submissions *service.SubmissionService
	reviews     *service.ReviewService
}

func NewAdminHandler(submissions *service.SubmissionService, reviews *service.ReviewService) *AdminHandler {
	return &AdminHandler{submissions: submissions, reviews: reviews}
}

// List handles GET /admin/submissions, newest first.
func (h *AdminHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	submissions, err := h.submissions.ListAll()
	if err != nil {
		log.Error("Failed to list submissions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, submissions)
}

// SetStatus handles PATCH /admin/submissions with body {id, isApproved}.
func (h *AdminHandler) SetStatus(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		ID         uint `json:"id"`
		IsApproved bool `json:"isApproved"`
	}
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse review request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	submission, err := h.reviews.SetStatus(req.ID, req.IsApproved)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			log.Info("Review of unknown submission", zap.Uint("id", req.ID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Submission not found"})
		}
		log.Error("Failed to update submission status",
			zap.Uint("id", req.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, submission)
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	log := logger.FromContext(c)

	stats, err := h.submissions.Stats()
	if err != nil {
		log.Error("Failed to compute submission stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, stats)
}
