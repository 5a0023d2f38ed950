package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "handoff/internal/delivery/context"
	mockService "handoff/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mockService.MockTokenService, header string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/addresses", http.NoBody)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var userID uuid.UUID
	called := false
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		userID, _ = deliverycontext.GetUserID(c)

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, userID, called
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("abc.def").Return(userID, nil)

	rec, got, called := runAuthenticate(t, tokenSvc, "bearer  abc.def ")

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, got)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		validate bool
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz", wantCode: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer", header: "Bearer ", wantCode: "INVALID_TOKEN_FORMAT"},
		{name: "token refused", header: "Bearer expired", validate: true, wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.validate {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(uuid.Nil, errors.New("token is expired"))
			}

			rec, _, called := runAuthenticate(t, tokenSvc, tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}
