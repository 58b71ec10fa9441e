package types

// TopicBrief 话题的列表展示结构
type TopicBrief struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	FollowerNums int64  `json:"follower_nums"`
}

// ActiveUser 话题下最活跃用户的临时展示结构，
// 回答数/获赞数只属于这次查询，不回写用户实体
type ActiveUser struct {
	UserID     uint64 `json:"user_id"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	AnswerNums int64  `json:"answer_nums"`
	VoteNums   int64  `json:"vote_nums"`
}

// TopicFilter 话题页的回答过滤方式
type TopicFilter string

const (
	FilterAll TopicFilter = "all"
	// FilterWonderful 精华，按获赞数排
	FilterWonderful TopicFilter = "wonderful"
)

type TopicDetailResponse struct {
	Topic       TopicBrief   `json:"topic"`
	Answers     []AnswerItem `json:"answers"`
	ActiveUsers []ActiveUser `json:"active_users"`
	Page        Page         `json:"page"`
}
