package service

import (
	"testing"

	"zhihuer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankActiveUsers(t *testing.T) {
	// 用户1: 2个回答共3赞; 用户2: 3个回答共5赞; 用户3: 1个回答0赞
	answers := []*models.Answer{
		{ID: 11, AuthorID: 1},
		{ID: 12, AuthorID: 1},
		{ID: 21, AuthorID: 2},
		{ID: 22, AuthorID: 2},
		{ID: 23, AuthorID: 2},
		{ID: 31, AuthorID: 3},
	}
	votes := map[uint64]int64{11: 1, 12: 2, 21: 2, 22: 2, 23: 1}

	stats := rankActiveUsers(answers, votes, 3)
	require.Len(t, stats, 3)
	assert.Equal(t, uint64(2), stats[0].UserID)
	assert.Equal(t, int64(3), stats[0].AnswerNums)
	assert.Equal(t, int64(5), stats[0].VoteNums)
	assert.Equal(t, uint64(1), stats[1].UserID)
	assert.Equal(t, uint64(3), stats[2].UserID)
}

func TestRankActiveUsersTieBreak(t *testing.T) {
	// 回答数相同看获赞数，都相同按用户ID升序
	answers := []*models.Answer{
		{ID: 1, AuthorID: 9},
		{ID: 2, AuthorID: 5},
		{ID: 3, AuthorID: 7},
	}
	votes := map[uint64]int64{1: 2, 2: 2, 3: 5}

	stats := rankActiveUsers(answers, votes, 0)
	require.Len(t, stats, 3)
	assert.Equal(t, uint64(7), stats[0].UserID)
	assert.Equal(t, uint64(5), stats[1].UserID)
	assert.Equal(t, uint64(9), stats[2].UserID)
}

func TestRankActiveUsersLimit(t *testing.T) {
	answers := []*models.Answer{
		{ID: 1, AuthorID: 1},
		{ID: 2, AuthorID: 2},
		{ID: 3, AuthorID: 3},
	}
	stats := rankActiveUsers(answers, nil, 2)
	assert.Len(t, stats, 2)
}

func TestRankActiveUsersEmpty(t *testing.T) {
	stats := rankActiveUsers(nil, nil, 3)
	assert.Empty(t, stats)
}

func TestRankAnswersByVotes(t *testing.T) {
	answers := []*models.Answer{
		{ID: 1},
		{ID: 2},
		{ID: 3},
	}
	votes := map[uint64]int64{1: 3, 2: 5, 3: 0}

	ranked := rankAnswersByVotes(answers, votes)
	require.Len(t, ranked, 3)
	assert.Equal(t, uint64(2), ranked[0].ID)
	assert.Equal(t, uint64(1), ranked[1].ID)
	assert.Equal(t, uint64(3), ranked[2].ID)
	// 原切片不动
	assert.Equal(t, uint64(1), answers[0].ID)
}

func TestRankAnswersByVotesStable(t *testing.T) {
	// 同票保持传入顺序
	answers := []*models.Answer{
		{ID: 7},
		{ID: 3},
		{ID: 5},
	}
	votes := map[uint64]int64{7: 1, 3: 1, 5: 1}

	ranked := rankAnswersByVotes(answers, votes)
	assert.Equal(t, uint64(7), ranked[0].ID)
	assert.Equal(t, uint64(3), ranked[1].ID)
	assert.Equal(t, uint64(5), ranked[2].ID)
}

func TestTopicBriefs(t *testing.T) {
	top := []idCount{
		{ID: 2, Count: 7},
		{ID: 1, Count: 3},
		{ID: 9, Count: 1},
	}
	topics := map[uint64]*models.Topic{
		1: {ID: 1, Name: "数学"},
		2: {ID: 2, Name: "电影"},
	}

	briefs := topicBriefs(top, topics)
	// 保持榜单顺序，查不到的ID(9)跳过
	require.Len(t, briefs, 2)
	assert.Equal(t, uint64(2), briefs[0].ID)
	assert.Equal(t, "电影", briefs[0].Name)
	assert.Equal(t, int64(7), briefs[0].FollowerNums)
	assert.Equal(t, uint64(1), briefs[1].ID)
	assert.Equal(t, int64(3), briefs[1].FollowerNums)
}

func TestQuestionBriefs(t *testing.T) {
	top := []idCount{
		{ID: 5, Count: 4},
		{ID: 8, Count: 2},
		{ID: 3, Count: 2},
	}
	questions := map[uint64]*models.Question{
		3: {ID: 3, Title: "如何入门围棋", ReadNums: 12},
		5: {ID: 5, Title: "火锅哪家强", ReadNums: 30},
	}

	briefs := questionBriefs(top, questions)
	require.Len(t, briefs, 2)
	assert.Equal(t, uint64(5), briefs[0].ID)
	assert.Equal(t, int64(30), briefs[0].ReadNums)
	assert.Equal(t, uint64(3), briefs[1].ID)
	assert.Equal(t, "如何入门围棋", briefs[1].Title)
}

func TestTopIDsByCount(t *testing.T) {
	pairs := []idCount{
		{ID: 1, Count: 3},
		{ID: 2, Count: 7},
		{ID: 3, Count: 3},
		{ID: 4, Count: 1},
	}
	top := topIDsByCount(pairs, 3)
	require.Len(t, top, 3)
	assert.Equal(t, uint64(2), top[0].ID)
	// 计数相同按ID升序
	assert.Equal(t, uint64(1), top[1].ID)
	assert.Equal(t, uint64(3), top[2].ID)
}
