package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 50
	maxPerPage     = 500
)

// Pagination reads ?page and ?per_page with sane caps. Page numbering is
// 1-based.
func Pagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.Query("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
