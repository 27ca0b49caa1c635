package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
)

// commonQueryParams is the raw query-string shape shared by every list
// endpoint. Dates arrive as strings so a malformed value can be told
// apart (400) from a well-formed but semantically invalid one (422).
type commonQueryParams struct {
	StartDate        string `form:"startDate"`
	EndDate          string `form:"endDate"`
	Limit            *int   `form:"limit"`
	Offset           *int   `form:"offset"`
	SortingField     string `form:"sortingField"`
	SortingDirection string `form:"sortingDirection"`
}

func bindQuery(c *gin.Context) (domain.Query, error) {
	var p commonQueryParams
	if err := c.ShouldBindQuery(&p); err != nil {
		return domain.Query{}, domain.ErrBadRequest(err.Error())
	}

	q := domain.DefaultQuery()
	if p.Limit != nil {
		q.Limit = *p.Limit
	}
	if p.Offset != nil {
		q.Offset = *p.Offset
	}
	if p.SortingField != "" {
		q.SortingField = p.SortingField
	}
	if p.SortingDirection != "" {
		q.SortingDirection = p.SortingDirection
	}
	if p.StartDate != "" {
		t, err := time.Parse(time.RFC3339, p.StartDate)
		if err != nil {
			return q, domain.ErrBadRequest("Invalid startDate.")
		}
		q.StartDate = &t
	}
	if p.EndDate != "" {
		t, err := time.Parse(time.RFC3339, p.EndDate)
		if err != nil {
			return q, domain.ErrBadRequest("Invalid endDate.")
		}
		q.EndDate = &t
	}

	if err := q.Validate(); err != nil {
		return q, err
	}
	return q, nil
}

func uintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, domain.ErrBadRequest(fmt.Sprintf("Invalid %s parameter.", name))
	}
	return uint(v), nil
}
