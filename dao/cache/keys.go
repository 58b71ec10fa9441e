package cache

import "fmt"

// 缓存键统一在这里拼。键是查询参数的确定性函数，
// 同一个查询在哪台机器上算出来的键都一样。
const keyPrefix = "zhihuer:"

func KeyExplorePage() string {
	return keyPrefix + "explore"
}

func KeyTopAnswers(questionID uint64) string {
	return fmt.Sprintf("%stop_answers:%d", keyPrefix, questionID)
}

func KeyTopicActiveUsers(topicID uint64, limit int) string {
	return fmt.Sprintf("%stopic:active_users:%d:%d", keyPrefix, topicID, limit)
}

func KeyHotTopics(limit int) string {
	return fmt.Sprintf("%shot_topics:%d", keyPrefix, limit)
}

func KeyHotQuestions(limit int) string {
	return fmt.Sprintf("%shot_questions:%d", keyPrefix, limit)
}

func KeyUserFeed(userID uint64) string {
	return fmt.Sprintf("%suser_feed:%d", keyPrefix, userID)
}

// KeyPage 匿名整页缓存，按请求路径区分
func KeyPage(path string) string {
	return fmt.Sprintf("%spage:%s", keyPrefix, path)
}
