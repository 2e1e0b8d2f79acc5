package rest

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetNFTByNameQueryParams holds query parameters for GET /nfts
type GetNFTByNameQueryParams struct {
	Name string `form:"name"`
}

// PopularCollectionsQueryParams holds query parameters for GET /collections/popular
type PopularCollectionsQueryParams struct {
	TimeRange string `form:"time_range"`
	Top       int    `form:"top,default=0"`
}

// ParseGetNFTByNameQuery parses query parameters for GET /nfts
func ParseGetNFTByNameQuery(c *gin.Context) (*GetNFTByNameQueryParams, error) {
	var params GetNFTByNameQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.Name = strings.TrimSpace(params.Name)
	return &params, nil
}

// ParsePopularCollectionsQuery parses query parameters for GET /collections/popular
func ParsePopularCollectionsQuery(c *gin.Context) (*PopularCollectionsQueryParams, error) {
	var params PopularCollectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.TimeRange = strings.ToLower(strings.TrimSpace(params.TimeRange))
	return &params, nil
}
