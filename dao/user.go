package dao

import (
	"context"
	"time"

	"zhihuer/models"
	"zhihuer/pkg/snowflake"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否被占用
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// GetOrCreateSentinel 取占位(deleted)用户，没有就懒创建
func (u *Users) GetOrCreateSentinel(ctx context.Context) (*models.User, error) {
	user := &models.User{
		Username:  models.SentinelUsername,
		Nickname:  models.SentinelUsername,
		Confirmed: true,
	}
	err := u.Db.WithContext(ctx).
		Where("username = ?", models.SentinelUsername).
		Attrs(models.User{ID: uint64(snowflake.GenID()), CreatedAt: time.Now()}).
		FirstOrCreate(user).Error
	return user, err
}

// FindByIDs 按ID批量查询
func (u *Users) FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (u *Users) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(data).Error
}

// DeleteWithSentinel 删号。作者身份转给占位用户，问题回答都留下来
func (u *Users) DeleteWithSentinel(ctx context.Context, id uint64, sentinelID uint64) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Question{}).
			Where("author_id = ?", id).
			Update("author_id", sentinelID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Answer{}).
			Where("author_id = ?", id).
			Update("author_id", sentinelID).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}
