package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, query string) *PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/hazards"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams_Defaults(t *testing.T) {
	p := paramsFor(t, "")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestGetPaginationParams_ClampsAndValidates(t *testing.T) {
	p := paramsFor(t, "?page=0&limit=9999&sortOrder=sideways")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestPaginationParams_Skip(t *testing.T) {
	p := &PaginationParams{Page: 3, PageSize: 10}
	assert.Equal(t, 20, p.GetSkip())
}

func TestPaginationParams_SortFieldMapping(t *testing.T) {
	assert.Equal(t, "created_at", (&PaginationParams{SortBy: "createdAt"}).SortField())
	assert.Equal(t, "credibility_score", (&PaginationParams{SortBy: "credibilityScore"}).SortField())
	// Unknown sort names fall back to created_at.
	assert.Equal(t, "created_at", (&PaginationParams{SortBy: "'; drop table"}).SortField())
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(&PaginationParams{Page: 2, PageSize: 10}, 25)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(25), meta.TotalItems)
	assert.Equal(t, 10, meta.ItemsPerPage)
}

func TestCreatePaginationMeta_ExactMultiple(t *testing.T) {
	meta := CreatePaginationMeta(&PaginationParams{Page: 1, PageSize: 10}, 30)
	assert.Equal(t, 3, meta.TotalPages)
}
