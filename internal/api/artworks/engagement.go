package artworks

import (
	"errors"
	"net/http"

	"kala-hive/database"
	"kala-hive/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ------------------------------
// POST /api/artworks/:id/like
// ------------------------------
// Toggles the session user's like. The like row and the counter are two
// separate writes; a failure between them leaves the counter drifted and
// is not compensated.
func ToggleLike(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	artworkID := c.Param("id")

	var artwork artworks.Artwork
	err := database.DB.First(&artwork, "id = ?", artworkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var existing artworks.ArtworkLike
	err = database.DB.
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		First(&existing).Error

	var liked bool
	switch {
	case err == nil:
		if err := database.DB.Delete(&existing).Error; err != nil {
			logrus.WithError(err).Error("like delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if err := database.DB.Model(&artworks.Artwork{}).
			Where("id = ?", artworkID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
			logrus.WithError(err).Error("like_count decrement failed after unlike")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		liked = false

	case errors.Is(err, gorm.ErrRecordNotFound):
		like := artworks.ArtworkLike{UserID: userID, ArtworkID: artworkID}
		if err := database.DB.Create(&like).Error; err != nil {
			logrus.WithError(err).Error("like insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if err := database.DB.Model(&artworks.Artwork{}).
			Where("id = ?", artworkID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
			logrus.WithError(err).Error("like_count increment failed after like")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		liked = true

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ------------------------------
// GET /api/artworks/:id/like?userId=
// ------------------------------
func GetLikeStatus(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: userId"})
		return
	}

	var like artworks.ArtworkLike
	err := database.DB.
		Where("user_id = ? AND artwork_id = ?", userID, c.Param("id")).
		First(&like).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": err == nil})
}

// ------------------------------
// POST /api/artworks/:id/view
// ------------------------------
// Records an impression; anonymous views are allowed. The view row and
// the counter increment are two separate writes, same drift caveat as
// the like toggle.
func RecordView(c *gin.Context) {
	artworkID := c.Param("id")

	var body struct {
		UserID string `json:"userId"`
	}
	// Body is optional; a missing or non-JSON body means anonymous.
	_ = c.ShouldBindJSON(&body)

	var userID *string
	if body.UserID != "" {
		userID = &body.UserID
	} else if sessionID := c.GetString("user_id"); sessionID != "" {
		userID = &sessionID
	}

	var artwork artworks.Artwork
	err := database.DB.First(&artwork, "id = ?", artworkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view := artworks.ArtworkView{UserID: userID, ArtworkID: artworkID}
	if err := database.DB.Create(&view).Error; err != nil {
		logrus.WithError(err).WithField("artwork_id", artworkID).Error("view insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := database.DB.Model(&artworks.Artwork{}).
		Where("id = ?", artworkID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		logrus.WithError(err).WithField("artwork_id", artworkID).Error("view_count increment failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "View recorded",
		"view_count": artwork.ViewCount + 1,
	})
}
