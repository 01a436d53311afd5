package artworks

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"kala-hive/database"
	"kala-hive/internal/domain/artworks"
	"kala-hive/internal/infra/media"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
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

// parseTags splits a comma-separated tag string, trimming whitespace and
// discarding empties. "warm, evening" -> ["warm", "evening"]
func parseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ------------------------------
// POST /api/artwork/upload
// ------------------------------
func UploadArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	file, header, err := c.Request.FormFile("image")
	if err != nil || title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: image, title"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	imageURL, err := media.Store.UploadImage(c.Request.Context(), "artworks", contentType, file)
	if err != nil {
		logrus.WithError(err).Error("artwork image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	artwork := artworks.Artwork{
		ArtistID:     userID,
		Title:        title,
		Description:  c.PostForm("description"),
		ImageURL:     imageURL,
		ThumbnailURL: imageURL,
		Category:     c.PostForm("category"),
		Tags:         pq.StringArray(parseTags(c.PostForm("tags"))),
	}

	// No compensation here: if the insert fails the uploaded object is
	// left orphaned in the bucket.
	if err := database.DB.Create(&artwork).Error; err != nil {
		logrus.WithError(err).Error("artwork insert failed after upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// ------------------------------
// POST /api/artworks (pre-uploaded image URL)
// ------------------------------
func CreateArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		ImageURL     string   `json:"imageUrl"`
		ThumbnailURL string   `json:"thumbnailUrl"`
		Category     string   `json:"category"`
		Tags         []string `json:"tags"`
		IsFeatured   bool     `json:"isFeatured"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title == "" || input.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: title, imageUrl"})
		return
	}

	thumbnail := input.ThumbnailURL
	if thumbnail == "" {
		thumbnail = input.ImageURL
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	artwork := artworks.Artwork{
		ArtistID:     userID,
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		ThumbnailURL: thumbnail,
		Category:     input.Category,
		Tags:         pq.StringArray(tags),
		IsFeatured:   input.IsFeatured,
	}

	if err := database.DB.Create(&artwork).Error; err != nil {
		logrus.WithError(err).Error("artwork insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// ------------------------------
// GET /api/artworks
// ------------------------------
func ListArtworks(c *gin.Context) {
	p := ParseListParams(c)

	var total int64
	if err := filteredArtworks(database.DB, p).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	var rows []artworks.Artwork
	err := filteredArtworks(database.DB, p).
		Order(p.OrderClause()).
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	dtos, err := attachArtists(database.DB, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artworks": dtos,
		"count":    total,
		"page":     p.Page,
		"limit":    p.Limit,
	})
}

// ------------------------------
// GET /api/artworks/featured
// ------------------------------
func ListFeaturedArtworks(c *gin.Context) {
	limit := 10
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= maxLimit {
		limit = v
	}

	var rows []artworks.Artwork
	err := database.DB.
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	dtos, err := attachArtists(database.DB, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": dtos})
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func GetArtworkByID(c *gin.Context) {
	var artwork artworks.Artwork
	err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	dtos, err := attachArtists(database.DB, []artworks.Artwork{artwork})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dtos[0])
}

// ------------------------------
// PUT /api/artworks/:id (owner only, partial)
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var artwork artworks.Artwork
	err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if artwork.ArtistID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var input struct {
		Title        *string   `json:"title"`
		Description  *string   `json:"description"`
		ImageURL     *string   `json:"imageUrl"`
		ThumbnailURL *string   `json:"thumbnailUrl"`
		Category     *string   `json:"category"`
		Tags         *[]string `json:"tags"`
		IsFeatured   *bool     `json:"isFeatured"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.ThumbnailURL != nil {
		updates["thumbnail_url"] = *input.ThumbnailURL
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(*input.Tags)
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&artwork).Updates(updates).Error; err != nil {
			logrus.WithError(err).Error("artwork update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, artwork)
}

// ------------------------------
// DELETE /api/artworks/:id (owner only)
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var artwork artworks.Artwork
	err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if artwork.ArtistID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// Like and view rows go with it via FK cascade.
	if err := database.DB.Delete(&artwork).Error; err != nil {
		logrus.WithError(err).Error("artwork delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
}
