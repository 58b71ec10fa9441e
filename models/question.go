package models

import "time"

// SentinelQuestionTitle 回答归属的问题被删除后指向的占位问题
const SentinelQuestionTitle = "deleted question"

type Question struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	AuthorID    uint64    `gorm:"column:author_id;not null;index:idx_questions_author" json:"author_id"`
	Content     string    `gorm:"column:content;type:text" json:"content"`
	PubTime     time.Time `gorm:"column:pub_time;index:idx_questions_pub_time" json:"pub_time"`
	Recommend   bool      `gorm:"column:recommend;not null;default:false" json:"recommend"`
	ReadNums    int64     `gorm:"column:read_nums;not null;default:0" json:"read_nums"` // 浏览量，只做展示，不保证精确
	IsAnonymous bool      `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionTopic 问题与话题的中间表
type QuestionTopic struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID uint64    `gorm:"column:question_id;uniqueIndex:uk_question_topic;not null" json:"question_id"`
	TopicID    uint64    `gorm:"column:topic_id;uniqueIndex:uk_question_topic;not null;index:idx_qt_topic" json:"topic_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (QuestionTopic) TableName() string {
	return "question_topics"
}
