package models

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// Mill is the tenant. Every domain record carries mill_id and every query is
// scoped to exactly one mill.
type Mill struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"` // uuid
	Name      string    `gorm:"size:100;not null" json:"name"`
	OwnerName string    `gorm:"size:100" json:"owner_name"`
	Address   string    `gorm:"size:255" json:"address"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMill struct {
	Name      string `json:"name" validate:"required"`
	OwnerName string `json:"owner_name"`
	Address   string `json:"address"`
}

func CreateMill(ctx context.Context, input *NewMill) (*Mill, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	mill := Mill{
		ID:        uuid.NewString(),
		Name:      input.Name,
		OwnerName: input.OwnerName,
		Address:   input.Address,
		IsActive:  utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&mill).Error; err != nil {
		return nil, utils.NewStorageError("create mill", err)
	}
	return &mill, nil
}

// ListMills returns every mill. For cross-tenant tooling; there is no
// HTTP surface for it.
func ListMills(ctx context.Context) ([]*Mill, error) {
	db := config.GetDB()
	var mills []*Mill
	if err := db.WithContext(ctx).Order("id").Find(&mills).Error; err != nil {
		return nil, utils.NewStorageError("list mills", err)
	}
	return mills, nil
}

// UpdateMill edits the tenant profile and drops the cached copy.
func UpdateMill(ctx context.Context, millId string, input *NewMill) (*Mill, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var mill Mill
	if err := db.WithContext(ctx).Where("id = ?", millId).First(&mill).Error; err != nil {
		return nil, utils.NewNotFoundError("mill %s not found", millId)
	}

	mill.Name = input.Name
	mill.OwnerName = input.OwnerName
	mill.Address = input.Address
	if err := db.WithContext(ctx).Save(&mill).Error; err != nil {
		return nil, utils.NewStorageError("update mill", err)
	}
	if err := config.RemoveRedisKey("Mill:" + millId); err != nil {
		return nil, err
	}
	return &mill, nil
}

// GetMillById reads through the redis cache; a deployment without redis falls
// straight through to the DB.
func GetMillById(ctx context.Context, millId string) (*Mill, error) {
	var mill Mill
	key := "Mill:" + millId
	exists, err := config.GetRedisObject(key, &mill)
	if err != nil {
		return nil, err
	}
	if exists {
		return &mill, nil
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Where("id = ?", millId).First(&mill).Error; err != nil {
		return nil, utils.NewNotFoundError("mill %s not found", millId)
	}
	if err := config.SetRedisObject(key, &mill, 0); err != nil {
		return nil, err
	}
	return &mill, nil
}
