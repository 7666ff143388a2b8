package models

import (
	"context"
	"time"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

type User struct {
	ID           int       `gorm:"primary_key" json:"id"`
	MillId       string    `gorm:"size:36;index;not null" json:"mill_id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"size:100" json:"name"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:20;not null" json:"role"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin manager operator"`
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	millId, ok := utils.GetMillIdFromContext(ctx)
	if !ok || millId == "" {
		return nil, utils.NewValidationError("mill id is required")
	}
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	// Login carries no mill, so usernames must be unique across all mills,
	// not just within the caller's. The check runs unscoped.
	if err := utils.ValidateUnique[User](utils.SkipMillScopeContext(ctx), "", "username", input.Username, 0); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		MillId:       millId,
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, utils.NewStorageError("create user", err)
	}
	return &user, nil
}

// Login verifies credentials and returns a signed token carrying the user's
// mill and role.
func Login(ctx context.Context, username string, password string) (string, *User, error) {
	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return "", nil, utils.NewNotFoundError("user not found")
	}
	if user.IsActive != nil && !*user.IsActive {
		return "", nil, utils.NewValidationError("user is inactive")
	}
	if err := utils.ComparePassword(user.PasswordHash, password); err != nil {
		return "", nil, utils.NewValidationError("invalid credentials")
	}

	token, err := utils.JwtGenerate(user.ID, user.MillId, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
