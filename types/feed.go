package types

import "time"

// FeedKind 动态类型标签
type FeedKind string

const (
	FeedAskQuestion    FeedKind = "ask_question"
	FeedWriteAnswer    FeedKind = "write_answer"
	FeedFollowQuestion FeedKind = "follow_question"
	FeedVoteAnswer     FeedKind = "vote_answer"
	FeedCollectAnswer  FeedKind = "collect_answer"
)

// FeedItem 个人动态流的一条。五种来源统一成
// (类型, 活动时间, 实体快照)，按活动时间倒序合并
type FeedItem struct {
	Kind       FeedKind  `json:"kind"`
	ActivityAt time.Time `json:"activity_at"`

	Question *QuestionBrief `json:"question,omitempty"`
	Answer   *AnswerItem    `json:"answer,omitempty"`
}

type UserFeedResponse struct {
	Items []FeedItem `json:"items"`
}
