package types

// SearchKind 搜索对象类型
type SearchKind string

const (
	SearchQuestion SearchKind = "question"
	SearchAnswer   SearchKind = "answer"
	SearchTopic    SearchKind = "topic"
	SearchUser     SearchKind = "user"
)

const (
	// MaxKeywordRunes 关键词长度上限
	MaxKeywordRunes = 64
	// MaxSearchResults 结果条数上限
	MaxSearchResults = 100
)

type SearchRequest struct {
	Kind     string `form:"kind" binding:"required"`
	Keywords string `form:"keywords" binding:"required"`
}

type SearchResponse struct {
	Questions []QuestionBrief `json:"questions,omitempty"`
	Answers   []AnswerItem    `json:"answers,omitempty"`
	Topics    []TopicBrief    `json:"topics,omitempty"`
	Users     []UserBrief     `json:"users,omitempty"`
}
