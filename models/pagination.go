package models

import (
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 200
)

type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasNextPage bool  `json:"hasNextPage"`
}

// PagedResult is the one list envelope every list endpoint returns.
type PagedResult[T any] struct {
	Data       []*T       `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// PaginateQuery counts the filtered set, then fetches one page.
// dbCtx must already carry the WHERE clauses and ordering.
func PaginateQuery[T any](dbCtx *gorm.DB, page, limit int) (*PagedResult[T], error) {
	page, limit = NormalizePage(page, limit)

	var total int64
	if err := dbCtx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, utils.NewStorageError("count page", err)
	}

	data := make([]*T, 0, limit)
	offset := (page - 1) * limit
	if err := dbCtx.Session(&gorm.Session{}).Offset(offset).Limit(limit).Find(&data).Error; err != nil {
		return nil, utils.NewStorageError("fetch page", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PagedResult[T]{
		Data: data,
		Pagination: Pagination{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasPrevPage: page > 1,
			HasNextPage: page < totalPages,
		},
	}, nil
}
