package dao

import (
	"context"

	"zhihuer/models"

	"gorm.io/gorm"
)

type Topics struct {
	Repo[models.Topic]
}

func NewTopics(db *gorm.DB) *Topics {
	return &Topics{
		Repo: NewRepo[models.Topic](db),
	}
}

// ListAll 全部话题，按ID升序
func (d *Topics) ListAll(ctx context.Context) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&topics).Error
	return topics, err
}

func (d *Topics) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Topic, error) {
	if len(ids) == 0 {
		return []*models.Topic{}, nil
	}
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&topics).Error
	return topics, err
}

// TopicFollowerRow 话题与其关注人数
type TopicFollowerRow struct {
	TopicID   uint64 `gorm:"column:topic_id"`
	Followers int64  `gorm:"column:followers"`
}

// CountFollowersByTopic 各话题的关注人数，只统计有关注记录的话题
func (d *Topics) CountFollowersByTopic(ctx context.Context) ([]TopicFollowerRow, error) {
	var rows []TopicFollowerRow
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollowTopic{}).
		Select("topic_id, COUNT(DISTINCT user_id) AS followers").
		Group("topic_id").
		Scan(&rows).Error
	return rows, err
}
