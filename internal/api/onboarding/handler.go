package onboarding

import (
	"errors"
	"net/http"

	"kala-hive/database"
	"kala-hive/internal/domain/users"
	"kala-hive/internal/infra/media"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func findOrCreateProfile(db *gorm.DB, userID string) (*users.Profile, error) {
	var profile users.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = users.Profile{UserID: userID}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// uploadFormImage pushes an optional multipart image to the media store.
// Returns nil when the field is absent.
func uploadFormImage(c *gin.Context, field string) (*string, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		// field absent, both images are optional
		return nil, nil
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := media.Store.UploadImage(c.Request.Context(), "profiles", contentType, file)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// ------------------------------
// POST /api/onboarding/user-type
// ------------------------------
func SelectUserType(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		UserType string `json:"userType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: userType"})
		return
	}
	if input.UserType != users.UserTypeArtist && input.UserType != users.UserTypeBuyer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user type"})
		return
	}

	profile, err := findOrCreateProfile(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := database.DB.Model(profile).Update("user_type", input.UserType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User type saved", "userType": input.UserType})
}

// ------------------------------
// POST /api/onboarding/artist-setup
// ------------------------------
// All fields are submitted together at the final step; there is no
// partial-save/resume.
func ArtistSetup(c *gin.Context) {
	completeSetup(c, users.UserTypeArtist)
}

// ------------------------------
// POST /api/onboarding/buyer-setup
// ------------------------------
func BuyerSetup(c *gin.Context) {
	completeSetup(c, users.UserTypeBuyer)
}

func completeSetup(c *gin.Context, userType string) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	displayName := c.PostForm("displayName")
	bio := c.PostForm("bio")
	if displayName == "" || bio == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in your display name and bio"})
		return
	}

	profile, err := findOrCreateProfile(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	profileImage, err := uploadFormImage(c, "profileImage")
	if err != nil {
		logrus.WithError(err).Error("profile image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	coverImage, err := uploadFormImage(c, "coverImage")
	if err != nil {
		logrus.WithError(err).Error("cover image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	profile.FullName = displayName
	profile.Bio = bio
	profile.Location = c.PostForm("location")
	profile.Website = c.PostForm("website")
	profile.UserType = userType
	profile.OnboardingCompleted = true
	if userType == users.UserTypeArtist {
		profile.ArtistStatement = c.PostForm("artistStatement")
	}
	if profileImage != nil {
		profile.ProfileImage = profileImage
	}
	if coverImage != nil {
		profile.CoverImage = coverImage
	}

	if err := database.DB.Save(profile).Error; err != nil {
		logrus.WithError(err).Error("profile save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	if _, err := users.EnsureUserName(database.DB, profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate username"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ------------------------------
// POST /api/onboarding/skip
// ------------------------------
// Marks onboarding complete without collecting anything; allowed from
// any point in the flow.
func Skip(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	profile, err := findOrCreateProfile(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := database.DB.Model(profile).Update("onboarding_completed", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboardingCompleted": true})
}
