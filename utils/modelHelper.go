package utils

import (
	"context"

	"github.com/bhoumik1804/krsika-backend/config"
)

/* DB fetching */

// fetch model from db
// (ctx's mill_id is used in query's WHERE, may return RecordNotFound)
func FetchModel[T any](ctx context.Context, millId string, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("mill_id = ?", millId)
	// preloading
	for _, field := range associations {
		dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}
