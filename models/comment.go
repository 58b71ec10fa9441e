package models

import "time"

// AnswerComment 回答评论表
type AnswerComment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	AnswerID  uint64    `gorm:"column:answer_id;not null;index:idx_comments_answer" json:"answer_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comments_user" json:"user_id"`
	Content   string    `gorm:"column:content;type:varchar(300);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AnswerComment) TableName() string {
	return "answer_comments"
}
