package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// pathID returns the named path parameter when it is a valid UUID.
// Otherwise it writes a 400 and returns false.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, name+" must be a valid UUID")
		return "", false
	}
	return id, true
}

// pageQuery is the skip/limit window shared by every listing.
type pageQuery struct {
	Skip  int  `form:"skip"`
	Limit *int `form:"limit"`
}

func (q pageQuery) page() domain.Page {
	p := domain.DefaultPage()
	p.Skip = q.Skip
	if q.Limit != nil {
		p.Limit = *q.Limit
	}
	return p
}

// bindJSON decodes the request body into dst, writing a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// bindQuery decodes the query string into dst, writing a 400 on failure.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		badRequest(c, "invalid query: "+err.Error())
		return false
	}
	return true
}
