package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/domain/constants"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	mockSvc "backoffice/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error.Code
}

// newAuthEcho registers an endpoint that echoes the authenticated owner.
func newAuthEcho(tokenSvc service.TokenService) *echo.Echo {
	auth := NewAuthMiddleware(tokenSvc)
	whoami := func(c echo.Context) error {
		ownerID, ok := GetOwnerID(c)
		if !ok {
			return c.NoContent(http.StatusUnauthorized)
		}

		return c.String(http.StatusOK, ownerID.String())
	}

	e := echo.New()
	e.GET("/api/v1/notifications", whoami, auth.Authenticate)
	e.GET("/api/v1/notifications/stream", whoami, auth.Authenticate)
	e.POST("/api/v1/notifications", whoami, auth.Authenticate, auth.RequireRole(constants.RoleAdmin))

	return e
}

func serve(e *echo.Echo, method, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	ownerID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("good").
		Return(&service.Claims{UserID: ownerID, Roles: []string{constants.RoleUser}}, nil).
		Maybe()
	tokenSvc.EXPECT().
		ValidateToken("expired").
		Return(nil, errors.New("token is expired")).
		Maybe()

	e := newAuthEcho(tokenSvc)

	tests := []struct {
		name       string
		target     string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{name: "bearer header", target: "/api/v1/notifications", authHeader: "Bearer good", wantStatus: http.StatusOK},
		{name: "missing header", target: "/api/v1/notifications", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "wrong scheme", target: "/api/v1/notifications", authHeader: "Basic good", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "empty bearer", target: "/api/v1/notifications", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "invalid token", target: "/api/v1/notifications", authHeader: "Bearer expired", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "query token on stream", target: "/api/v1/notifications/stream?access_token=good", wantStatus: http.StatusOK},
		{name: "query token elsewhere", target: "/api/v1/notifications?access_token=good", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.target, tt.authHeader)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			} else {
				assert.Equal(t, ownerID.String(), rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("admin").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{constants.RoleUser, constants.RoleAdmin}}, nil)
	tokenSvc.EXPECT().
		ValidateToken("user").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{constants.RoleUser}}, nil)

	e := newAuthEcho(tokenSvc)

	rec := serve(e, http.MethodPost, "/api/v1/notifications", "Bearer admin")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodPost, "/api/v1/notifications", "Bearer user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "domain error", err: errors.WithStack(domainerrors.ErrNotificationNotFound), wantStatus: http.StatusNotFound, wantCode: "NOTIFICATION_NOT_FOUND"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed), wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unexpected error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}
