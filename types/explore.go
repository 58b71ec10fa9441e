package types

type ExplorePageResponse struct {
	// RecommendQuestions 按浏览量取前5
	RecommendQuestions []QuestionBrief `json:"recommend_questions"`
	// MonthAnswers 本月发布、按获赞数排序的回答
	MonthAnswers []AnswerItem `json:"month_answers"`
	// TodayAnswers 今日发布、按获赞数排序的回答
	TodayAnswers []AnswerItem `json:"today_answers"`
	// HotTopics 按关注人数取前5
	HotTopics []TopicBrief `json:"hot_topics"`
}
