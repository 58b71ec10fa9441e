package types

import "time"

// UserBrief 列表里带的作者信息，匿名内容时置空
type UserBrief struct {
	ID       uint64 `json:"id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// AnswerItem 回答的展示结构，计数全部现算，不从实体字段读
type AnswerItem struct {
	ID          uint64    `json:"id"`
	QuestionID  uint64    `json:"question_id"`
	Author      UserBrief `json:"author"`
	IsAnonymous bool      `json:"is_anonymous"`
	Content     string    `json:"content"`
	PubTime     time.Time `json:"pub_time"`
	VoteNums    int64     `json:"vote_nums"`
	CommentNums int64     `json:"comment_nums"`
}

type CreateAnswerRequest struct {
	QuestionID  uint64 `json:"question_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsAnonymous bool   `json:"is_anonymous"`
}

type HomeFeedResponse struct {
	Answers []AnswerItem `json:"answers"`
	Page    Page         `json:"page"`
}
