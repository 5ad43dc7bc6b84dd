package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/handler/handlertest"
	"github.com/jwalitptl/staff-directory/internal/middleware"
	"github.com/jwalitptl/staff-directory/pkg/auth"
)

func actingEngine(tokens *auth.TokenService) *gin.Engine {
	return handlertest.NewEngine(func(r gin.IRouter) {
		r.Use(middleware.ActingEmployee(tokens, handler.Responder{}))
		r.GET("/whoami", func(c *gin.Context) {
			id, ok := handler.ActingEmployeeID(c)
			c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id": id, "ok": ok}))
		})
	})
}

func TestActingEmployeeWithoutHeader(t *testing.T) {
	engine := actingEngine(auth.NewTokenService("secret", time.Hour))

	resp := handlertest.Do(t, engine, http.MethodGet, "/whoami", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":0,"ok":false}`, string(resp.Data))
}

func TestActingEmployeeValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	token, _, err := tokens.Issue(4, "Ann Lee")
	require.NoError(t, err)

	resp := handlertest.Do(t, actingEngine(tokens), http.MethodGet, "/whoami", nil,
		"Authorization", "Bearer "+token)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":4,"ok":true}`, string(resp.Data))
}

func TestActingEmployeeRejectsBadTokens(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	foreign, _, err := auth.NewTokenService("other", time.Hour).Issue(4, "Ann Lee")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage", header: "Bearer not-a-token"},
		{name: "foreign signature", header: "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handlertest.Do(t, actingEngine(tokens), http.MethodGet, "/whoami", nil,
				"Authorization", tt.header)

			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, "unauthorized", resp.Message)
		})
	}
}
