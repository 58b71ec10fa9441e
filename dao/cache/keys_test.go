package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysDeterministic(t *testing.T) {
	// 同参数算出的键必须一样，不然各实例各存一份缓存
	assert.Equal(t, KeyTopAnswers(42), KeyTopAnswers(42))
	assert.Equal(t, KeyTopicActiveUsers(7, 3), KeyTopicActiveUsers(7, 3))
	assert.Equal(t, KeyHotTopics(5), KeyHotTopics(5))
	assert.Equal(t, KeyHotQuestions(5), KeyHotQuestions(5))
	assert.Equal(t, KeyUserFeed(9), KeyUserFeed(9))
	assert.Equal(t, KeyPage("/api/explore"), KeyPage("/api/explore"))
	assert.Equal(t, KeyExplorePage(), KeyExplorePage())
}

func TestKeysDistinct(t *testing.T) {
	keys := []string{
		KeyExplorePage(),
		KeyTopAnswers(1),
		KeyTopAnswers(2),
		KeyTopicActiveUsers(1, 3),
		KeyTopicActiveUsers(1, 5),
		KeyTopicActiveUsers(2, 3),
		KeyHotTopics(5),
		KeyHotQuestions(5),
		KeyUserFeed(1),
		KeyPage("/api/topic"),
		KeyPage("/api/explore"),
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "键冲突: %s", k)
		seen[k] = true
	}
}

func TestKeysPrefixed(t *testing.T) {
	assert.Contains(t, KeyTopAnswers(1), keyPrefix)
	assert.Contains(t, KeyPage("/api/topic"), keyPrefix)
}
