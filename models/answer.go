package models

import "time"

type Answer struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	QuestionID uint64    `gorm:"column:question_id;not null;index:idx_answers_question" json:"question_id"`
	AuthorID   uint64    `gorm:"column:author_id;not null;index:idx_answers_author" json:"author_id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	PubTime    time.Time `gorm:"column:pub_time;index:idx_answers_pub_time" json:"pub_time"`
	// 历史遗留的冗余计数列，现行逻辑始终按点赞记录实时统计，这两列不再读写
	VoteupNums   int64 `gorm:"column:voteup_nums;not null;default:0" json:"-"`
	VotedownNums int64 `gorm:"column:votedown_nums;not null;default:0" json:"-"`
	IsAnonymous  bool  `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
}

func (Answer) TableName() string {
	return "answers"
}
