package models

import "time"

// 交互关系表。有行即生效，取消即删行，不走软删除，
// (user, object) 建唯一索引保证一对主客体至多一条记录。

// UserFollowQuestion 用户关注问题
type UserFollowQuestion struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;uniqueIndex:uk_ufq;not null" json:"user_id"`
	QuestionID uint64    `gorm:"column:question_id;uniqueIndex:uk_ufq;not null;index:idx_ufq_question" json:"question_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserFollowQuestion) TableName() string {
	return "user_follow_questions"
}

// UserFollowAnswer 用户点赞回答
type UserFollowAnswer struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:uk_ufa;not null" json:"user_id"`
	AnswerID  uint64    `gorm:"column:answer_id;uniqueIndex:uk_ufa;not null;index:idx_ufa_answer" json:"answer_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserFollowAnswer) TableName() string {
	return "user_follow_answers"
}

// UserCollectAnswer 用户收藏回答
type UserCollectAnswer struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:uk_uca;not null" json:"user_id"`
	AnswerID  uint64    `gorm:"column:answer_id;uniqueIndex:uk_uca;not null;index:idx_uca_answer" json:"answer_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserCollectAnswer) TableName() string {
	return "user_collect_answers"
}

// UserFollowTopic 用户关注话题
type UserFollowTopic struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:uk_uft;not null" json:"user_id"`
	TopicID   uint64    `gorm:"column:topic_id;uniqueIndex:uk_uft;not null;index:idx_uft_topic" json:"topic_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserFollowTopic) TableName() string {
	return "user_follow_topics"
}

// UserRelationship 用户关注用户
type UserRelationship struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;uniqueIndex:uk_ur;not null" json:"follower_id"` // 关注人
	FollowedID uint64    `gorm:"column:followed_id;uniqueIndex:uk_ur;not null;index:idx_ur_followed" json:"followed_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserRelationship) TableName() string {
	return "user_relationships"
}
