package types

import "time"

type QuestionBrief struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	ReadNums int64  `json:"read_nums"`
}

type QuestionItem struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      UserBrief `json:"author"`
	IsAnonymous bool      `json:"is_anonymous"`
	PubTime     time.Time `json:"pub_time"`
	ReadNums    int64     `json:"read_nums"`
	AnswerNums  int64     `json:"answer_nums"`
	FollowNums  int64     `json:"follow_nums"`
}

// AnswerSort 问题详情页的回答排序方式
type AnswerSort string

const (
	SortByVotes AnswerSort = "by_votes"
	SortByTime  AnswerSort = "by_time"
)

type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Content     string   `json:"content"`
	IsAnonymous bool     `json:"is_anonymous"`
	TopicIDs    []uint64 `json:"topic_ids"`
}

type QuestionDetailResponse struct {
	Question         QuestionItem    `json:"question"`
	Answers          []AnswerItem    `json:"answers"`
	RelatedQuestions []QuestionBrief `json:"related_questions"`
	Page             Page            `json:"page"`
}
