package artworks

import (
	"strconv"

	"kala-hive/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 100
)

// Whitelist of sortable columns. Anything else falls back to created_at.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"view_count": "view_count",
	"like_count": "like_count",
}

type ListParams struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	SortBy    string
	SortOrder string
}

func ParseListParams(c *gin.Context) ListParams {
	p := ListParams{
		Page:      defaultPage,
		Limit:     defaultLimit,
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = v
		if p.Limit > maxLimit {
			p.Limit = maxLimit
		}
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p ListParams) OrderClause() string {
	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

// filteredArtworks applies the category and search filters in that fixed
// order; ordering and pagination are layered on by the caller.
func filteredArtworks(db *gorm.DB, p ListParams) *gorm.DB {
	q := db.Model(&artworks.Artwork{})
	if p.Category != "" {
		q = q.Where("category = ?", p.Category)
	}
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	return q
}
