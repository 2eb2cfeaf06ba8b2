package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-backend/middleware"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var secret = []byte("test-secret")

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Authenticate(secret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(middleware.ContextUserID),
			"role":   c.GetString(middleware.ContextRole),
		})
	})
	return r
}

func TestAuthenticate_MissingToken(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	r := protectedRouter(services.RoleBranchAdmin)

	token, err := services.GenerateToken(secret, primitive.NewObjectID().Hex(), services.RoleBranchAdmin, services.AdminTokenTTL)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_TokenCookie(t *testing.T) {
	r := protectedRouter(services.RoleBranchAdmin)

	token, err := services.GenerateToken(secret, primitive.NewObjectID().Hex(), services.RoleBranchAdmin, services.AdminTokenTTL)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_WrongRole(t *testing.T) {
	r := protectedRouter(services.RoleBranchAdmin)

	token, err := services.GenerateToken(secret, primitive.NewObjectID().Hex(), services.RoleDeliveryBoy, services.DeliveryBoyTokenTTL)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticate_TamperedToken(t *testing.T) {
	r := protectedRouter()

	token, err := services.GenerateToken([]byte("other-secret"), primitive.NewObjectID().Hex(), services.RoleBranchAdmin, services.AdminTokenTTL)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
