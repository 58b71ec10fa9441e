package dao

import (
	"context"
	"time"

	"zhihuer/models"

	"gorm.io/gorm"
)

type Answers struct {
	Repo[models.Answer]
}

func NewAnswers(db *gorm.DB) *Answers {
	return &Answers{
		Repo: NewRepo[models.Answer](db),
	}
}

// ListNewest 首页流，全部回答按发布时间倒序分页
func (d *Answers) ListNewest(ctx context.Context, limit, offset int) ([]*models.Answer, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Answer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Order("pub_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&answers).Error
	return answers, total, err
}

// ListByQuestion 问题下的回答，按发布时间倒序
func (d *Answers) ListByQuestion(ctx context.Context, questionID uint64) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("pub_time DESC").
		Find(&answers).Error
	return answers, err
}

// ListByTopic 话题下的回答（经由问题归属），按发布时间倒序
func (d *Answers) ListByTopic(ctx context.Context, topicID uint64) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Joins("INNER JOIN question_topics ON answers.question_id = question_topics.question_id").
		Where("question_topics.topic_id = ?", topicID).
		Order("answers.pub_time DESC").
		Find(&answers).Error
	return answers, err
}

// ListByPubTimeRange 发布时间落在[from, to)内的回答
func (d *Answers) ListByPubTimeRange(ctx context.Context, from, to time.Time) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("pub_time >= ? AND pub_time < ?", from, to).
		Order("pub_time DESC").
		Find(&answers).Error
	return answers, err
}

// ListByAuthor 用户发布的回答
func (d *Answers) ListByAuthor(ctx context.Context, authorID uint64) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_time DESC").
		Find(&answers).Error
	return answers, err
}

// FindByIDs 按ID批量查询
func (d *Answers) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Answer, error) {
	if len(ids) == 0 {
		return []*models.Answer{}, nil
	}
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&answers).Error
	return answers, err
}
