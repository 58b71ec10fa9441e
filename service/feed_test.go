package service

import (
	"testing"
	"time"

	"zhihuer/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFeed(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []types.FeedItem{
		{Kind: types.FeedAskQuestion, ActivityAt: base.Add(1 * time.Hour)},
		{Kind: types.FeedVoteAnswer, ActivityAt: base.Add(3 * time.Hour)},
		{Kind: types.FeedWriteAnswer, ActivityAt: base.Add(2 * time.Hour)},
	}

	merged := mergeFeed(items)
	require.Len(t, merged, 3)
	assert.Equal(t, types.FeedVoteAnswer, merged[0].Kind)
	assert.Equal(t, types.FeedWriteAnswer, merged[1].Kind)
	assert.Equal(t, types.FeedAskQuestion, merged[2].Kind)
}

func TestMergeFeedSameTimestampKeepsOrder(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []types.FeedItem{
		{Kind: types.FeedAskQuestion, ActivityAt: at},
		{Kind: types.FeedFollowQuestion, ActivityAt: at},
		{Kind: types.FeedCollectAnswer, ActivityAt: at},
	}

	merged := mergeFeed(items)
	assert.Equal(t, types.FeedAskQuestion, merged[0].Kind)
	assert.Equal(t, types.FeedFollowQuestion, merged[1].Kind)
	assert.Equal(t, types.FeedCollectAnswer, merged[2].Kind)
}

func TestMergeFeedDeterministic(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	items := make([]types.FeedItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, types.FeedItem{
			Kind:       types.FeedWriteAnswer,
			ActivityAt: base.Add(time.Duration(i%5) * time.Minute),
		})
	}

	first := mergeFeed(items)
	second := mergeFeed(items)
	assert.Equal(t, first, second)
}

func TestMergeFeedEmpty(t *testing.T) {
	assert.Empty(t, mergeFeed(nil))
	assert.Empty(t, mergeFeed([]types.FeedItem{}))
}
