package dao

import (
	"context"

	"zhihuer/models"

	"gorm.io/gorm"
)

type Comments struct {
	Repo[models.AnswerComment]
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{
		Repo: NewRepo[models.AnswerComment](db),
	}
}

// ListByAnswer 回答下的评论，按时间正序分页
func (d *Comments) ListByAnswer(ctx context.Context, answerID uint64, limit, offset int) ([]*models.AnswerComment, error) {
	var comments []*models.AnswerComment
	err := d.Db.WithContext(ctx).
		Where("answer_id = ?", answerID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

// CountByAnswers 批量取各回答的评论数
func (d *Comments) CountByAnswers(ctx context.Context, answerIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(answerIDs))
	if len(answerIDs) == 0 {
		return result, nil
	}

	type row struct {
		AnswerID uint64 `gorm:"column:answer_id"`
		Total    int64  `gorm:"column:total"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.AnswerComment{}).
		Select("answer_id, COUNT(*) AS total").
		Where("answer_id IN ?", answerIDs).
		Group("answer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.AnswerID] = r.Total
	}
	return result, nil
}
