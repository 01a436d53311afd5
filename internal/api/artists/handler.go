package artists

import (
	"errors"
	"net/http"
	"strconv"

	"kala-hive/database"
	"kala-hive/internal/domain/artworks"
	"kala-hive/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/artists/:username
// ------------------------------
// Resolves the human-readable handle to a profile, then lists that
// artist's artworks newest first.
func GetArtistByUsername(c *gin.Context) {
	username := c.Param("username")

	var profile users.Profile
	err := database.DB.Where("user_name = ?", username).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	page := 1
	limit := 12
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	var total int64
	if err := database.DB.Model(&artworks.Artwork{}).
		Where("artist_id = ?", profile.UserID).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	var rows []artworks.Artwork
	err = database.DB.
		Where("artist_id = ?", profile.UserID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":   profile,
		"artworks": rows,
		"count":    total,
		"page":     page,
		"limit":    limit,
	})
}

// ------------------------------
// GET /api/artists/top
// ------------------------------
// Artists ranked by accumulated likes across their artworks.
func GetTopArtists(c *gin.Context) {
	limit := 10
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	type artistTotals struct {
		ArtistID     string `json:"-"`
		TotalLikes   int64  `json:"total_likes"`
		ArtworkCount int64  `json:"artwork_count"`
	}

	var totals []artistTotals
	err := database.DB.Model(&artworks.Artwork{}).
		Select("artist_id, SUM(like_count) AS total_likes, COUNT(*) AS artwork_count").
		Group("artist_id").
		Order("total_likes DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	ids := make([]string, 0, len(totals))
	for _, t := range totals {
		ids = append(ids, t.ArtistID)
	}

	profileByUserID := map[string]users.Profile{}
	if len(ids) > 0 {
		var profiles []users.Profile
		if err := database.DB.Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
			return
		}
		for _, p := range profiles {
			profileByUserID[p.UserID] = p
		}
	}

	out := make([]gin.H, 0, len(totals))
	for _, t := range totals {
		entry := gin.H{
			"artist_id":     t.ArtistID,
			"total_likes":   t.TotalLikes,
			"artwork_count": t.ArtworkCount,
		}
		if p, ok := profileByUserID[t.ArtistID]; ok {
			entry["profile"] = p
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"artists": out})
}
