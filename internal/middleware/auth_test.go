package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"workload_survey/internal/middleware"
	"workload_survey/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier map[string]*util.Claims

func (s stubVerifier) Verify(token string) (*util.Claims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, errors.New("bad token")
}

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := stubVerifier{
		"admin":  {Role: util.RoleAdmin},
		"viewer": {Role: "viewer"},
	}
	r.GET("/secret", middleware.AuthMiddleware(v), middleware.RoleMiddleware(util.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserFromContext(c).Role)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"missing", "", "", http.StatusUnauthorized},
		{"invalid", "Bearer nope", "", http.StatusUnauthorized},
		{"wrong role", "Bearer viewer", "", http.StatusForbidden},
		{"header", "Bearer admin", "", http.StatusOK},
		{"query", "", "admin", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/secret"
			if tt.query != "" {
				url += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router().ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
