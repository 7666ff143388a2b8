package utils

import (
	"context"
	"reflect"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs `validate` struct tags on an input DTO and converts the
// first failure into a ValidationError.
func ValidateStruct(input any) error {
	if err := validate.Struct(input); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return NewValidationError("invalid value for %s", errs[0].Field())
		}
		return NewValidationError("%s", err.Error())
	}
	return nil
}

func ValidateUnique[T any](ctx context.Context, millId string, column string, value interface{}, exceptId interface{}) error {
	var count int64
	var err error
	if reflect.ValueOf(exceptId).IsZero() {
		count, err = ResourceCountWhere[T](ctx, millId, column+" = ?", value)
	} else {
		count, err = ResourceCountWhere[T](ctx, millId, column+" = ? AND NOT id = ?", value, exceptId)
	}

	if err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("duplicate %s", column)
	}
	return nil
}

// count records, using WHERE mill_id = ? AND $condition
// mill_id can be blank for admin user
func ResourceCountWhere[T any](ctx context.Context, millId string, condition string, value ...interface{}) (int64, error) {
	var model T

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&model)
	var count int64
	if millId != "" {
		dbCtx.Where("mill_id = ?", millId)
	}
	dbCtx.Where(condition, value...)
	if err := dbCtx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
