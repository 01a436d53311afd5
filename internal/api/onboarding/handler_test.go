package onboarding

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func fakeSession(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestSelectUserTypeRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/onboarding/user-type", SelectUserType)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/onboarding/user-type", strings.NewReader(`{"userType":"artist"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSelectUserTypeRejectsInvalidType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/onboarding/user-type", fakeSession("u1"), SelectUserType)

	for _, body := range []string{`{}`, `{"userType":"admin"}`, `{"userType":""}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/onboarding/user-type", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestArtistSetupRequiresDisplayNameAndBio(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/onboarding/artist-setup", fakeSession("u1"), ArtistSetup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/onboarding/artist-setup", strings.NewReader("displayName=Jane"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "display name and bio")
}

func TestBuyerSetupRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/onboarding/buyer-setup", BuyerSetup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/onboarding/buyer-setup", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSkipRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/onboarding/skip", Skip)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/onboarding/skip", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
