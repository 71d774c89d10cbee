package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

func newAuthTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/", AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RoleAuthMiddleware(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": CurrentUserRole(c)})
	})
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := doRequest(t, newAuthTestRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		w := doRequest(t, newAuthTestRouter(), "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		w := doRequest(t, newAuthTestRouter(), "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and exposes the principal", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(7, "sarah@example.com", models.RoleTreasurer)
		require.NoError(t, err)

		w := doRequest(t, newAuthTestRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), models.RoleTreasurer)
	})
}

func TestRoleAuthMiddleware(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(7, "sarah@example.com", models.RoleTreasurer)
		require.NoError(t, err)

		w := doRequest(t, newAuthTestRouter(models.RoleAdmin, models.RoleTreasurer), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disallowed role is forbidden, not unauthorized", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(7, "viewer@example.com", models.RoleViewer)
		require.NoError(t, err)

		w := doRequest(t, newAuthTestRouter(models.RoleAdmin), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
