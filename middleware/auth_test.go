package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-backend/utils"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminAuth())
	r.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("adminEmail")})
	})
	return r
}

func TestAdminAuthHeaderForms(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken(1, "admin@spa.local")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"bearer prefix", "Bearer " + token, http.StatusOK},
		{"lowercase prefix", "bearer " + token, http.StatusOK},
		{"raw token", token, http.StatusOK},
		{"no space after prefix", "bearerX" + token, http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage", "not-a-token", http.StatusUnauthorized},
	}

	r := authRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
