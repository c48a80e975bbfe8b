package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yukikurage/task-manager-api/internal/auth"
	"github.com/yukikurage/task-manager-api/internal/config"
)

func newTokens(t *testing.T) *auth.HMACTokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:     "0123456789abcdef0123456789abcdef",
		TokenLifetime: time.Hour,
	})
	require.NoError(t, err)
	return tokens
}

func newRouter(tokens auth.TokenService, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	tokens := newTokens(t)
	router := newRouter(tokens, zap.NewNop())

	valid, err := tokens.GenerateToken(context.Background(), auth.Principal{UserID: 7, Email: "ann@example.com"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"userId":7}`, w.Body.String())
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set("user_id", 5)
	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), id)

	c.Set("user_id", "5")
	_, ok = GetUserID(c)
	assert.False(t, ok)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := newRouter(newTokens(t), zap.New(core))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, int64(http.StatusUnauthorized), entry.ContextMap()["status"])
	assert.Equal(t, "/protected", entry.ContextMap()["path"])
}
