package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cwru-wtf/homebase/internal/testutil"
	"github.com/cwru-wtf/homebase/pkg/config"
	"github.com/cwru-wtf/homebase/pkg/jwtutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "handler-test-key", ExpirationHours: 1})
	db, mock := testutil.NewMockDB(t)
	return NewAuthHandler(db), mock
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Login(c))
	return rec
}

func adminRow(t *testing.T, password string, active bool) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "name", "role", "is_active", "created_at", "updated_at",
	}).AddRow(3, "reviewer@case.edu", string(hash), "Reviewer", "admin", active, now, now)
}

func TestLoginSucceeds(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE email = \$1`).
		WithArgs("reviewer@case.edu", 1).
		WillReturnRows(adminRow(t, "opensesame", true))

	rec := postLogin(t, h, `{"email":"reviewer@case.edu","password":"opensesame"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "reviewer@case.edu", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := jwtutil.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.AdminID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	tests := []struct {
		name string
		rows func(t *testing.T) *sqlmock.Rows
	}{
		{
			name: "unknown account",
			rows: func(t *testing.T) *sqlmock.Rows {
				return sqlmock.NewRows([]string{"id"})
			},
		},
		{
			name: "inactive account",
			rows: func(t *testing.T) *sqlmock.Rows {
				return adminRow(t, "opensesame", false)
			},
		},
		{
			name: "wrong password",
			rows: func(t *testing.T) *sqlmock.Rows {
				return adminRow(t, "somethingelse", true)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newAuthHandler(t)

			mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE email = \$1`).
				WillReturnRows(tt.rows(t))

			rec := postLogin(t, h, `{"email":"reviewer@case.edu","password":"opensesame"}`)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
