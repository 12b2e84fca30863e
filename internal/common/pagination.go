package common

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// pagination bounds shared by every list endpoint
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is the uniform list-query contract:
// page >= 1, size in [1,100].
type Pagination struct {
	Page int
	Size int
}

// ParsePagination reads page/size query parameters with clamping
func ParsePagination(c *gin.Context) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Pagination{Page: page, Size: size}
}

// Offset returns the row offset for the page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// PageMeta builds the response meta for a total row count
func (p Pagination) PageMeta(total int64) *Meta {
	pages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		pages++
	}
	return &Meta{
		Page:       p.Page,
		Size:       p.Size,
		TotalCount: total,
		TotalPages: pages,
	}
}

// OrderBy is a parsed "<column> <asc|desc>" sort parameter
type OrderBy struct {
	Column string
	Desc   bool
}

// ParseOrderBy parses the two-token orderBy parameter against a column
// whitelist. Unknown columns fall back to the component default.
func ParseOrderBy(raw string, allowed map[string]bool, defaultColumn string, defaultDesc bool) OrderBy {
	fields := strings.Fields(raw)
	if len(fields) == 2 && allowed[fields[0]] {
		return OrderBy{
			Column: fields[0],
			Desc:   strings.EqualFold(fields[1], "desc"),
		}
	}
	return OrderBy{Column: defaultColumn, Desc: defaultDesc}
}

// Clause renders the SQL ORDER BY fragment
func (o OrderBy) Clause() string {
	dir := "asc"
	if o.Desc {
		dir = "desc"
	}
	return o.Column + " " + dir
}
