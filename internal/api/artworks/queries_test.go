package artworks

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParseListParamsDefaults(t *testing.T) {
	c := testContext(t, "/api/artworks")
	p := ParseListParams(c)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 12, p.Limit)
	assert.Equal(t, "", p.Category)
	assert.Equal(t, "", p.Search)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestParseListParamsExplicit(t *testing.T) {
	c := testContext(t, "/api/artworks?page=3&limit=5&category=Painting&search=sunset&sortBy=view_count&sortOrder=asc")
	p := ParseListParams(c)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 5, p.Limit)
	assert.Equal(t, "Painting", p.Category)
	assert.Equal(t, "sunset", p.Search)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, "view_count ASC", p.OrderClause())
}

func TestParseListParamsRejectsGarbage(t *testing.T) {
	c := testContext(t, "/api/artworks?page=-2&limit=0")
	p := ParseListParams(c)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 12, p.Limit)
}

func TestParseListParamsCapsLimit(t *testing.T) {
	c := testContext(t, "/api/artworks?limit=5000")
	p := ParseListParams(c)

	assert.Equal(t, maxLimit, p.Limit)
}

func TestOrderClauseWhitelistsSortColumn(t *testing.T) {
	p := ListParams{SortBy: "like_count", SortOrder: "desc"}
	assert.Equal(t, "like_count DESC", p.OrderClause())

	// anything outside the whitelist falls back to created_at
	p = ListParams{SortBy: "title; DROP TABLE artworks", SortOrder: "asc"}
	assert.Equal(t, "created_at ASC", p.OrderClause())

	p = ListParams{SortBy: "created_at", SortOrder: "sideways"}
	assert.Equal(t, "created_at DESC", p.OrderClause())
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"warm", "evening"}, parseTags("warm, evening"))
	assert.Equal(t, []string{"a", "b", "c"}, parseTags(" a ,b,  c  "))
	assert.Equal(t, []string{"solo"}, parseTags("solo"))
	assert.Equal(t, []string{}, parseTags(""))
	assert.Equal(t, []string{}, parseTags(" , , "))
}
