package dao

import (
	"context"
	"time"

	"zhihuer/models"
	"zhihuer/pkg/snowflake"

	"gorm.io/gorm"
)

type Questions struct {
	Repo[models.Question]
}

type QuestionTopics struct {
	Repo[models.QuestionTopic]
}

func NewQuestions(db *gorm.DB) *Questions {
	return &Questions{
		Repo: NewRepo[models.Question](db),
	}
}

func NewQuestionTopics(db *gorm.DB) *QuestionTopics {
	return &QuestionTopics{
		Repo: NewRepo[models.QuestionTopic](db),
	}
}

// IncrReadNums 浏览量+1。纯展示口径，并发下少计就少计
func (d *Questions) IncrReadNums(ctx context.Context, questionID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", questionID).
		UpdateColumn("read_nums", gorm.Expr("read_nums + 1")).Error
}

// ListByTopic 按话题取问题，按浏览量倒序
func (d *Questions) ListByTopic(ctx context.Context, topicID uint64, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Joins("INNER JOIN question_topics ON questions.id = question_topics.question_id").
		Where("question_topics.topic_id = ?", topicID).
		Order("questions.read_nums DESC").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ListTopByReadNums 按浏览量取前N个问题
func (d *Questions) ListTopByReadNums(ctx context.Context, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Order("read_nums DESC").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ListByAuthor 用户提出的问题
func (d *Questions) ListByAuthor(ctx context.Context, authorID uint64) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_time DESC").
		Find(&questions).Error
	return questions, err
}

// FindByIDs 按ID批量查询
func (d *Questions) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Question, error) {
	if len(ids) == 0 {
		return []*models.Question{}, nil
	}
	var questions []*models.Question
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

// GetOrCreateSentinel 取占位(deleted question)问题，没有就懒创建
func (d *Questions) GetOrCreateSentinel(ctx context.Context, sentinelAuthorID uint64) (*models.Question, error) {
	question := &models.Question{
		Title:    models.SentinelQuestionTitle,
		AuthorID: sentinelAuthorID,
	}
	err := d.Db.WithContext(ctx).
		Where("title = ?", models.SentinelQuestionTitle).
		Attrs(models.Question{ID: uint64(snowflake.GenID()), PubTime: time.Now()}).
		FirstOrCreate(question).Error
	return question, err
}

// DeleteWithSentinel 删问题。归属的回答改挂到占位问题上
func (d *Questions) DeleteWithSentinel(ctx context.Context, id uint64, sentinelID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ?", id).
			Update("question_id", sentinelID).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.QuestionTopic{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Question{}).Error
	})
}

// FirstTopicID 问题归属的第一个话题，没有话题返回 0
func (d *QuestionTopics) FirstTopicID(ctx context.Context, questionID uint64) (uint64, error) {
	var topicIDs []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.QuestionTopic{}).
		Where("question_id = ?", questionID).
		Order("id ASC").
		Limit(1).
		Pluck("topic_id", &topicIDs).Error
	if err != nil || len(topicIDs) == 0 {
		return 0, err
	}
	return topicIDs[0], nil
}

// BatchCreate 批量建立问题与话题的关联
func (d *QuestionTopics) BatchCreate(ctx context.Context, questionID uint64, topicIDs []uint64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	rows := make([]*models.QuestionTopic, 0, len(topicIDs))
	for _, tid := range topicIDs {
		rows = append(rows, &models.QuestionTopic{QuestionID: questionID, TopicID: tid})
	}
	return d.Db.WithContext(ctx).Create(&rows).Error
}
