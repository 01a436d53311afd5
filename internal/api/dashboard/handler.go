package dashboard

import (
	"net/http"

	"kala-hive/database"
	"kala-hive/internal/domain/artworks"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /api/dashboard/artist
// ------------------------------
// Aggregate stats for the session artist: totals plus a handful of
// recent pieces.
func ArtistDashboard(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var artworkCount int64
	if err := database.DB.Model(&artworks.Artwork{}).
		Where("artist_id = ?", userID).
		Count(&artworkCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var totals struct {
		TotalViews int64
		TotalLikes int64
	}
	err := database.DB.Model(&artworks.Artwork{}).
		Select("COALESCE(SUM(view_count), 0) AS total_views, COALESCE(SUM(like_count), 0) AS total_likes").
		Where("artist_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var recent []artworks.Artwork
	err = database.DB.
		Where("artist_id = ?", userID).
		Order("created_at DESC").
		Limit(6).
		Find(&recent).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artwork_count":   artworkCount,
		"total_views":     totals.TotalViews,
		"total_likes":     totals.TotalLikes,
		"recent_artworks": recent,
	})
}

// ------------------------------
// GET /api/dashboard/liked
// ------------------------------
// The artworks the session user has liked, most recently liked first.
func LikedArtworks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var rows []artworks.Artwork
	err := database.DB.Model(&artworks.Artwork{}).
		Joins("JOIN artwork_likes ON artwork_likes.artwork_id = artworks.id").
		Where("artwork_likes.user_id = ?", userID).
		Order("artwork_likes.created_at DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load liked artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": rows})
}
