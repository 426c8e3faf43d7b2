package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/internal/service"
	"github.com/cwru-wtf/homebase/internal/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdminHandler(t *testing.T) (*AdminHandler, sqlmock.Sqlmock) {
	db, mock := testutil.NewMockDB(t)
	audit := service.NewAuditLogger(db, zap.NewNop())
	submissions := service.NewSubmissionService(db, audit, zap.NewNop())
	reviews := service.NewReviewService(db, audit, zap.NewNop())
	return NewAdminHandler(submissions, reviews), mock
}

func adminContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListSubmissionsEndpoint(t *testing.T) {
	h, mock := newAdminHandler(t)

	mock.ExpectQuery(`SELECT \* FROM "submissions" ORDER BY created_at desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "categories"}).
			AddRow(2, "Newer", "newer@case.edu", `["Other"]`).
			AddRow(1, "Older", "older@case.edu", `["Art / Design"]`))

	c, rec := adminContext(t, http.MethodGet, "/admin/submissions", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var submissions []model.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submissions))
	require.Len(t, submissions, 2)
	assert.Equal(t, "Newer", submissions[0].Name)
	assert.Equal(t, `["Other"]`, submissions[0].Categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusEndpoint(t *testing.T) {
	h, mock := newAdminHandler(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "submissions" WHERE "submissions"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "is_approved", "created_at", "updated_at"}).
			AddRow(7, "Ana", "ana@case.edu", nil, now, now))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "submissions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "action_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "action_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	c, rec := adminContext(t, http.MethodPatch, "/admin/submissions", `{"id":7,"isApproved":true}`)
	require.NoError(t, h.SetStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var submission model.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submission))
	assert.Equal(t, uint(7), submission.ID)
	require.NotNil(t, submission.IsApproved)
	assert.True(t, *submission.IsApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusEndpointUnknownID(t *testing.T) {
	h, mock := newAdminHandler(t)

	mock.ExpectQuery(`SELECT \* FROM "submissions" WHERE "submissions"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c, rec := adminContext(t, http.MethodPatch, "/admin/submissions", `{"id":99,"isApproved":true}`)
	require.NoError(t, h.SetStatus(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Submission not found"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsEndpoint(t *testing.T) {
	h, mock := newAdminHandler(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "submissions" WHERE is_approved = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "submissions" WHERE is_approved IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "submissions" WHERE is_approved = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	c, rec := adminContext(t, http.MethodGet, "/admin/stats", "")
	require.NoError(t, h.Stats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":1,"approved":1,"pending":0,"rejected":0}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
